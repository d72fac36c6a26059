package adminshell

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	content "github.com/onebuyai/go-sitecms/components/content"
)

const leadsChartHeight = "360px"

// LeadsChart renders the overview bar chart of demo and supplier request
// pipelines, bucketed by status.
type LeadsChart struct {
	theme string
}

// NewLeadsChart builds the chart with the default theme.
func NewLeadsChart() *LeadsChart {
	return &LeadsChart{theme: types.ThemeWesteros}
}

// RenderHTML produces the embeddable chart markup for the current snapshot.
func (c *LeadsChart) RenderHTML(demoRequests, supplierRequests []content.Record) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Lead Pipeline"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  c.theme,
			Height: leadsChartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	statuses := unionStatuses(content.DemoRequestStatuses, content.SupplierStatuses)
	bar.SetXAxis(statuses)
	bar.AddSeries("Demo Requests", statusSeries(demoRequests, statuses))
	bar.AddSeries("Supplier Requests", statusSeries(supplierRequests, statuses))

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("adminshell: render leads chart: %w", err)
	}
	return buf.String(), nil
}

func unionStatuses(sets ...[]string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, set := range sets {
		for _, status := range set {
			if _, ok := seen[status]; ok {
				continue
			}
			seen[status] = struct{}{}
			out = append(out, status)
		}
	}
	return out
}

func statusSeries(records []content.Record, statuses []string) []opts.BarData {
	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.String("status")]++
	}
	data := make([]opts.BarData, len(statuses))
	for i, status := range statuses {
		data[i] = opts.BarData{Value: counts[status]}
	}
	return data
}
