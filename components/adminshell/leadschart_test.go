package adminshell

import (
	"strings"
	"testing"

	content "github.com/onebuyai/go-sitecms/components/content"
)

func TestLeadsChartRenderHTML(t *testing.T) {
	chart := NewLeadsChart()
	demo := []content.Record{
		{Payload: map[string]any{"status": "new"}},
		{Payload: map[string]any{"status": "contacted"}},
	}
	supplier := []content.Record{
		{Payload: map[string]any{"status": "pending"}},
	}
	html, err := chart.RenderHTML(demo, supplier)
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}
	if html == "" {
		t.Fatalf("expected markup")
	}
	for _, want := range []string{"Lead Pipeline", "Demo Requests", "Supplier Requests"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in markup", want)
		}
	}
}

func TestUnionStatusesDeduplicates(t *testing.T) {
	got := unionStatuses([]string{"new", "contacted"}, []string{"pending", "contacted"})
	if len(got) != 3 {
		t.Fatalf("expected 3 statuses, got %v", got)
	}
	if got[0] != "new" || got[1] != "contacted" || got[2] != "pending" {
		t.Fatalf("expected first-seen order, got %v", got)
	}
}
