package content

import (
	"context"
	"errors"
)

// MultiHook fans record events out to several refresh hooks, e.g. the
// broadcast hook plus an audit trail.
type MultiHook []RefreshHook

// RecordChanged delivers the event to every hook, collecting errors.
func (m MultiHook) RecordChanged(ctx context.Context, event RecordEvent) error {
	var errs error
	for _, hook := range m {
		if hook == nil {
			continue
		}
		if err := hook.RecordChanged(ctx, event); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
