package publicsite

import (
	content "github.com/onebuyai/go-sitecms/components/content"
	"github.com/onebuyai/go-sitecms/components/worldmap"
)

// Hero is the home page masthead.
type Hero struct {
	Headline      string
	SubHeadline   string
	CTAPrimary    string
	CTASecondary  string
	ScreenshotURL string
}

// Stat is one entry of the stats bar.
type Stat struct {
	Key         string
	Value       string
	Label       string
	Description string
}

// Logo is a customer logo strip entry.
type Logo struct {
	Name    string
	LogoURL string
}

// Testimonial is a customer quote. Only active quotes render.
type Testimonial struct {
	Quote    string
	Author   string
	Company  string
	Industry string
}

// Marker is a map location with percentage coordinates.
type Marker struct {
	Name string
	X    float64
	Y    float64
	Type string
}

// Flow is a rendered map connector with its quadratic control point. The
// stored curveBelow flag is authoritative; the renderer computes nothing.
type Flow struct {
	From    worldmap.Point
	To      worldmap.Point
	Control worldmap.Point
	Color   string
}

// RegionCard summarizes a sourcing region.
type RegionCard struct {
	Name      string
	Countries string
	Icon      string
	Type      string
}

// Product is a product grid entry.
type Product struct {
	ProductID   string
	Name        string
	Tagline     string
	Description string
	Features    []string
	Benefits    []string
	Icon        string
}

// ContentBlock is the shared shape of problems, workflow steps, and use cases.
type ContentBlock struct {
	Title       string
	Description string
	Icon        string
}

// TeamMember is an about page person.
type TeamMember struct {
	Name      string
	Role      string
	Bio       string
	Expertise string
	Education string
	Linkedin  string
	Type      string
}

// HomePage is the view model for the landing page.
type HomePage struct {
	Hero            Hero
	Stats           []Stat
	Logos           []Logo
	ShowClientNames bool
	Testimonials    []Testimonial
	Markers         []Marker
	Flows           []Flow
	Regions         []RegionCard
	Problems        []ContentBlock
	WorkflowSteps   []ContentBlock
}

// ProductsPage is the view model for the products page.
type ProductsPage struct {
	Products []Product
	UseCases []ContentBlock
}

// AboutPage is the view model for the about/team page.
type AboutPage struct {
	Founders []TeamMember
	Team     []TeamMember
	Advisors []TeamMember
}

// Hard-coded fallbacks keep the site rendering when the backend errs.
var (
	fallbackHero = Hero{
		Headline:     "AI-powered sourcing for industrial buyers",
		SubHeadline:  "Find, qualify, and manage suppliers in days, not months.",
		CTAPrimary:   "Request a Demo",
		CTASecondary: "See Products",
	}
	fallbackStats = []Stat{
		{Key: "cost-savings", Value: "15-20%", Label: "Cost Savings"},
		{Key: "cycle-time", Value: "60%", Label: "Faster Sourcing Cycles"},
		{Key: "suppliers", Value: "4,000+", Label: "Vetted Suppliers"},
	}
	fallbackProducts = []Product{
		{ProductID: "supplier-discovery", Name: "Supplier Discovery", Tagline: "Qualified suppliers in days"},
		{ProductID: "rfq-automation", Name: "RFQ Automation", Tagline: "From spec to award without spreadsheets"},
	}
)

func heroFromRecord(rec content.Record) Hero {
	return Hero{
		Headline:      rec.String("headline"),
		SubHeadline:   rec.String("subHeadline"),
		CTAPrimary:    rec.String("ctaPrimary"),
		CTASecondary:  rec.String("ctaSecondary"),
		ScreenshotURL: rec.String("screenshotUrl"),
	}
}

func statsFromRecords(records []content.Record) []Stat {
	out := make([]Stat, 0, len(records))
	for _, rec := range records {
		out = append(out, Stat{
			Key:         rec.String("key"),
			Value:       rec.String("value"),
			Label:       rec.String("label"),
			Description: rec.String("description"),
		})
	}
	return out
}

func logosFromRecords(records []content.Record) []Logo {
	out := make([]Logo, 0, len(records))
	for _, rec := range records {
		out = append(out, Logo{Name: rec.String("name"), LogoURL: rec.String("logoUrl")})
	}
	return out
}

func testimonialsFromRecords(records []content.Record) []Testimonial {
	out := make([]Testimonial, 0, len(records))
	for _, rec := range records {
		if !rec.Bool("isActive") {
			continue
		}
		out = append(out, Testimonial{
			Quote:    rec.String("quote"),
			Author:   rec.String("author"),
			Company:  rec.String("company"),
			Industry: rec.String("industry"),
		})
	}
	return out
}

func markersFromRecords(records []content.Record) []Marker {
	out := make([]Marker, 0, len(records))
	for _, rec := range records {
		x, _ := rec.Float("x")
		y, _ := rec.Float("y")
		out = append(out, Marker{
			Name: rec.String("name"),
			X:    x,
			Y:    y,
			Type: rec.String("type"),
		})
	}
	return out
}

// flowsFromRecords resolves flow line endpoints against the marker set and
// drops inactive lines or lines pointing at missing locations.
func flowsFromRecords(records []content.Record, markers []Marker) []Flow {
	byName := make(map[string]worldmap.Point, len(markers))
	for _, m := range markers {
		byName[m.Name] = worldmap.Point{X: m.X, Y: m.Y}
	}
	out := make([]Flow, 0, len(records))
	for _, rec := range records {
		if !rec.Bool("isActive") {
			continue
		}
		from, okFrom := byName[rec.String("fromLocation")]
		to, okTo := byName[rec.String("toLocation")]
		if !okFrom || !okTo {
			continue
		}
		out = append(out, Flow{
			From:    from,
			To:      to,
			Control: worldmap.ControlPoint(from, to, rec.Bool("curveBelow")),
			Color:   rec.String("color"),
		})
	}
	return out
}

func regionsFromRecords(records []content.Record) []RegionCard {
	out := make([]RegionCard, 0, len(records))
	for _, rec := range records {
		out = append(out, RegionCard{
			Name:      rec.String("name"),
			Countries: rec.String("countries"),
			Icon:      rec.String("icon"),
			Type:      rec.String("type"),
		})
	}
	return out
}

func productsFromRecords(records []content.Record) []Product {
	out := make([]Product, 0, len(records))
	for _, rec := range records {
		out = append(out, Product{
			ProductID:   rec.String("productId"),
			Name:        rec.String("name"),
			Tagline:     rec.String("tagline"),
			Description: rec.String("description"),
			Features:    stringSlice(rec.Payload["features"]),
			Benefits:    stringSlice(rec.Payload["benefits"]),
			Icon:        rec.String("icon"),
		})
	}
	return out
}

func blocksFromRecords(records []content.Record, titleField string) []ContentBlock {
	out := make([]ContentBlock, 0, len(records))
	for _, rec := range records {
		out = append(out, ContentBlock{
			Title:       rec.String(titleField),
			Description: rec.String("description"),
			Icon:        rec.String("icon"),
		})
	}
	return out
}

func teamFromRecords(records []content.Record, memberType string) []TeamMember {
	out := make([]TeamMember, 0, len(records))
	for _, rec := range records {
		if rec.String("type") != memberType {
			continue
		}
		out = append(out, TeamMember{
			Name:      rec.String("name"),
			Role:      rec.String("role"),
			Bio:       rec.String("bio"),
			Expertise: rec.String("expertise"),
			Education: rec.String("education"),
			Linkedin:  rec.String("linkedin"),
			Type:      rec.String("type"),
		})
	}
	return out
}

func stringSlice(raw any) []string {
	switch values := raw.(type) {
	case []string:
		return append([]string(nil), values...)
	case []any:
		out := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
