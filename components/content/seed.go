package content

import (
	"context"
	"errors"
	"fmt"
)

// SeedAll installs seed payloads for every registered resource whose
// collection is still empty. Singleton resources materialize lazily via
// Service.Singleton, so they are skipped here.
func SeedAll(ctx context.Context, service *Service) (int, error) {
	if service == nil {
		return 0, errors.New("content: service is required to seed")
	}
	var seedErr error
	total := 0
	for _, def := range service.Resources().Definitions() {
		if def.Kind == KindSingleton || len(def.Seed) == 0 {
			continue
		}
		created, err := service.SeedCollection(ctx, def.Code)
		if err != nil {
			seedErr = errors.Join(seedErr, fmt.Errorf("seed %s: %w", def.Code, err))
		}
		total += created
	}
	return total, seedErr
}

// SeedAll seeds every empty collection in the catalog.
func (s *Service) SeedAll(ctx context.Context) (int, error) {
	return SeedAll(ctx, s)
}
