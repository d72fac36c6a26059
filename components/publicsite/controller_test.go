package publicsite

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	content "github.com/onebuyai/go-sitecms/components/content"
)

type fakeSource struct {
	collections map[string][]content.Record
	singletons  map[string]content.Record
	errs        map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		collections: map[string][]content.Record{},
		singletons:  map[string]content.Record{},
		errs:        map[string]error{},
	}
}

func (f *fakeSource) Collection(_ context.Context, resource string) ([]content.Record, error) {
	if err := f.errs[resource]; err != nil {
		return nil, err
	}
	return f.collections[resource], nil
}

func (f *fakeSource) Singleton(_ context.Context, resource string) (content.Record, error) {
	if err := f.errs[resource]; err != nil {
		return content.Record{}, err
	}
	return f.singletons[resource], nil
}

type fakeRenderer struct {
	calls    int
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	f.calls++
	f.lastName = name
	f.lastData = data
	if f.err != nil {
		return "", f.err
	}
	for _, w := range out {
		_, _ = w.Write([]byte("<html>" + name + "</html>"))
	}
	return "<html>" + name + "</html>", nil
}

func TestHomePageFallsBackWhenSourceFails(t *testing.T) {
	source := newFakeSource()
	source.errs[content.ResourceHeroSection] = errors.New("store offline")
	source.errs[content.ResourceSiteStats] = errors.New("store offline")
	controller, err := NewController(source, nil)
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}

	page := controller.HomePage(context.Background())
	if page.Hero.Headline != fallbackHero.Headline {
		t.Fatalf("expected fallback hero, got %q", page.Hero.Headline)
	}
	if len(page.Stats) != len(fallbackStats) {
		t.Fatalf("expected fallback stats")
	}
	if !page.ShowClientNames {
		t.Fatalf("client names should default to visible")
	}
}

func TestHomePageUsesLoadedContent(t *testing.T) {
	source := newFakeSource()
	source.singletons[content.ResourceHeroSection] = content.Record{
		Payload: map[string]any{"headline": "Sourcing, simplified", "ctaPrimary": "Book a demo"},
	}
	source.singletons[content.ResourceSiteSettings] = content.Record{
		Payload: map[string]any{"showClientNames": false},
	}
	source.collections[content.ResourceSiteStats] = []content.Record{
		{Payload: map[string]any{"key": "suppliers", "value": "4,000+", "label": "Vetted Suppliers"}},
	}
	controller, _ := NewController(source, nil)

	page := controller.HomePage(context.Background())
	if page.Hero.Headline != "Sourcing, simplified" {
		t.Fatalf("expected loaded hero, got %q", page.Hero.Headline)
	}
	if len(page.Stats) != 1 || page.Stats[0].Key != "suppliers" {
		t.Fatalf("expected loaded stats, got %#v", page.Stats)
	}
	if page.ShowClientNames {
		t.Fatalf("expected settings to hide client names")
	}
}

func TestHomePageSkipsEmptyHeroHeadline(t *testing.T) {
	source := newFakeSource()
	source.singletons[content.ResourceHeroSection] = content.Record{
		Payload: map[string]any{"subHeadline": "no headline set"},
	}
	controller, _ := NewController(source, nil)
	page := controller.HomePage(context.Background())
	if page.Hero.Headline != fallbackHero.Headline {
		t.Fatalf("blank headline must keep the fallback")
	}
}

func TestTestimonialsOnlyActiveRender(t *testing.T) {
	source := newFakeSource()
	source.collections[content.ResourceTestimonials] = []content.Record{
		{Payload: map[string]any{"quote": "great", "isActive": true}},
		{Payload: map[string]any{"quote": "hidden", "isActive": false}},
	}
	controller, _ := NewController(source, nil)
	page := controller.HomePage(context.Background())
	if len(page.Testimonials) != 1 || page.Testimonials[0].Quote != "great" {
		t.Fatalf("expected only active testimonials, got %#v", page.Testimonials)
	}
}

func TestFlowsDropInactiveAndDangling(t *testing.T) {
	source := newFakeSource()
	source.collections[content.ResourceMapLocations] = []content.Record{
		{Payload: map[string]any{"name": "Rotterdam", "x": 48.0, "y": 28.0}},
		{Payload: map[string]any{"name": "Shenzhen", "x": 78.0, "y": 42.0}},
	}
	source.collections[content.ResourceFlowLines] = []content.Record{
		{Payload: map[string]any{"fromLocation": "Shenzhen", "toLocation": "Rotterdam", "isActive": true, "color": "#1d4ed8"}},
		{Payload: map[string]any{"fromLocation": "Shenzhen", "toLocation": "Rotterdam", "isActive": false}},
		{Payload: map[string]any{"fromLocation": "Atlantis", "toLocation": "Rotterdam", "isActive": true}},
	}
	controller, _ := NewController(source, nil)

	page := controller.HomePage(context.Background())
	if len(page.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(page.Markers))
	}
	if len(page.Flows) != 1 {
		t.Fatalf("expected inactive and dangling flows dropped, got %d", len(page.Flows))
	}
	flow := page.Flows[0]
	if flow.From.X != 78 || flow.To.X != 48 {
		t.Fatalf("expected endpoints resolved by name, got %#v", flow)
	}
	if flow.Control == flow.From || flow.Control == flow.To {
		t.Fatalf("expected a computed control point")
	}
}

func TestProductsPageFallsBack(t *testing.T) {
	source := newFakeSource()
	source.errs[content.ResourceProducts] = errors.New("store offline")
	controller, _ := NewController(source, nil)
	page := controller.ProductsPage(context.Background())
	if len(page.Products) != len(fallbackProducts) {
		t.Fatalf("expected fallback products")
	}
}

func TestProductsPageDecodesFeatureLists(t *testing.T) {
	source := newFakeSource()
	source.collections[content.ResourceProducts] = []content.Record{
		{Payload: map[string]any{
			"productId": "supplier-discovery",
			"name":      "Supplier Discovery",
			"features":  []any{"AI matching", "Risk scoring"},
		}},
	}
	controller, _ := NewController(source, nil)
	page := controller.ProductsPage(context.Background())
	if len(page.Products) != 1 || len(page.Products[0].Features) != 2 {
		t.Fatalf("expected decoded features, got %#v", page.Products)
	}
}

func TestAboutPageSplitsTeamByType(t *testing.T) {
	source := newFakeSource()
	source.collections[content.ResourceTeamMembers] = []content.Record{
		{Payload: map[string]any{"name": "F1", "type": "founder"}},
		{Payload: map[string]any{"name": "T1", "type": "team"}},
		{Payload: map[string]any{"name": "T2", "type": "team"}},
		{Payload: map[string]any{"name": "A1", "type": "advisor"}},
	}
	controller, _ := NewController(source, nil)
	page := controller.AboutPage(context.Background())
	if len(page.Founders) != 1 || len(page.Team) != 2 || len(page.Advisors) != 1 {
		t.Fatalf("expected members grouped by type, got %d/%d/%d",
			len(page.Founders), len(page.Team), len(page.Advisors))
	}
}

func TestRenderHomeWritesMarkup(t *testing.T) {
	renderer := &fakeRenderer{}
	controller, _ := NewController(newFakeSource(), renderer)
	var buf bytes.Buffer
	if err := controller.RenderHome(context.Background(), &buf); err != nil {
		t.Fatalf("RenderHome returned error: %v", err)
	}
	if renderer.lastName != "home" {
		t.Fatalf("expected home template, got %s", renderer.lastName)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected markup written")
	}
	if _, ok := renderer.lastData.(HomePage); !ok {
		t.Fatalf("expected HomePage model, got %T", renderer.lastData)
	}
}

func TestRenderWithoutRendererFails(t *testing.T) {
	controller, _ := NewController(newFakeSource(), nil)
	if err := controller.RenderAbout(context.Background(), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error without renderer")
	}
}
