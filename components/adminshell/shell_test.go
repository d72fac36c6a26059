package adminshell

import (
	"context"
	"errors"
	"sync"
	"testing"

	content "github.com/onebuyai/go-sitecms/components/content"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	records map[string][]content.Record
	errs    map[string]error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls:   map[string]int{},
		records: map[string][]content.Record{},
		errs:    map[string]error{},
	}
}

func (f *fakeFetcher) List(_ context.Context, resource string) ([]content.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[resource]++
	if err := f.errs[resource]; err != nil {
		return nil, err
	}
	return f.records[resource], nil
}

func (f *fakeFetcher) listCalls(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[resource]
}

func testShellRegistry(t *testing.T, codes ...string) content.ResourceRegistry {
	t.Helper()
	reg := content.NewEmptyRegistry()
	for _, code := range codes {
		if err := reg.RegisterDefinition(content.ResourceDefinition{Code: code, Name: code}); err != nil {
			t.Fatalf("register %s: %v", code, err)
		}
	}
	return reg
}

func TestFetchAllLoadsEveryCollection(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["products"] = []content.Record{{ID: "p-1"}}
	fetcher.records["testimonials"] = []content.Record{{ID: "t-1"}, {ID: "t-2"}}

	shell, err := NewShell(fetcher, testShellRegistry(t, "products", "testimonials"))
	if err != nil {
		t.Fatalf("NewShell returned error: %v", err)
	}
	shell.FetchAll(context.Background())

	if len(shell.Collection("products")) != 1 || len(shell.Collection("testimonials")) != 2 {
		t.Fatalf("expected all collections loaded")
	}
	if fetcher.listCalls("products") != 1 || fetcher.listCalls("testimonials") != 1 {
		t.Fatalf("expected one fetch per resource")
	}
	if shell.Loading() {
		t.Fatalf("loading flag should clear after fetch")
	}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["products"] = []content.Record{{ID: "p-1"}}
	fetcher.records["testimonials"] = []content.Record{{ID: "t-1"}}

	shell, _ := NewShell(fetcher, testShellRegistry(t, "products", "testimonials"))
	shell.FetchAll(context.Background())

	// Second pass: testimonials breaks, products grows.
	fetcher.mu.Lock()
	fetcher.errs["testimonials"] = errors.New("store offline")
	fetcher.records["products"] = []content.Record{{ID: "p-1"}, {ID: "p-2"}}
	fetcher.mu.Unlock()
	shell.FetchAll(context.Background())

	if len(shell.Collection("products")) != 2 {
		t.Fatalf("healthy resource must be replaced")
	}
	if len(shell.Collection("testimonials")) != 1 {
		t.Fatalf("failed resource must keep its stale collection")
	}
	if shell.Err("testimonials") == nil {
		t.Fatalf("expected isolated error recorded")
	}
	if shell.Err("products") != nil {
		t.Fatalf("healthy resource must not carry an error")
	}

	// Third pass: testimonials recovers and its error clears.
	fetcher.mu.Lock()
	delete(fetcher.errs, "testimonials")
	fetcher.mu.Unlock()
	shell.FetchAll(context.Background())
	if shell.Err("testimonials") != nil {
		t.Fatalf("expected error cleared after recovery")
	}
}

func TestCollectionReturnsCopy(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["products"] = []content.Record{{ID: "p-1"}}
	shell, _ := NewShell(fetcher, testShellRegistry(t, "products"))
	shell.FetchAll(context.Background())

	got := shell.Collection("products")
	got[0].ID = "mutated"
	if shell.Collection("products")[0].ID != "p-1" {
		t.Fatalf("callers must not mutate the shell's state")
	}
}
