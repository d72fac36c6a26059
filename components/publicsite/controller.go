package publicsite

import (
	"context"
	"errors"
	"fmt"
	"io"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// Source provides read-only access to published content. The content
// service and the REST client both satisfy it.
type Source interface {
	Collection(ctx context.Context, resource string) ([]content.Record, error)
	Singleton(ctx context.Context, resource string) (content.Record, error)
}

// Renderer describes the template renderer contract needed by the controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// Controller assembles page view models with per-section fallbacks: a
// failing source section renders default content instead of erroring the
// whole page.
type Controller struct {
	source   Source
	renderer Renderer
}

// NewController builds the public-site controller.
func NewController(source Source, renderer Renderer) (*Controller, error) {
	if source == nil {
		return nil, errors.New("publicsite: content source is required")
	}
	return &Controller{source: source, renderer: renderer}, nil
}

// HomePage assembles the landing page model.
func (c *Controller) HomePage(ctx context.Context) HomePage {
	page := HomePage{Hero: fallbackHero, Stats: fallbackStats, ShowClientNames: true}

	if hero, err := c.source.Singleton(ctx, content.ResourceHeroSection); err == nil {
		if hero.String("headline") != "" {
			page.Hero = heroFromRecord(hero)
		}
	}
	if stats, err := c.source.Collection(ctx, content.ResourceSiteStats); err == nil && len(stats) > 0 {
		page.Stats = statsFromRecords(stats)
	}
	if settings, err := c.source.Singleton(ctx, content.ResourceSiteSettings); err == nil {
		if _, ok := settings.Payload["showClientNames"]; ok {
			page.ShowClientNames = settings.Bool("showClientNames")
		}
	}
	if logos, err := c.source.Collection(ctx, content.ResourceCustomerLogos); err == nil {
		page.Logos = logosFromRecords(logos)
	}
	if quotes, err := c.source.Collection(ctx, content.ResourceTestimonials); err == nil {
		page.Testimonials = testimonialsFromRecords(quotes)
	}
	if locations, err := c.source.Collection(ctx, content.ResourceMapLocations); err == nil {
		page.Markers = markersFromRecords(locations)
		if lines, err := c.source.Collection(ctx, content.ResourceFlowLines); err == nil {
			page.Flows = flowsFromRecords(lines, page.Markers)
		}
	}
	if regions, err := c.source.Collection(ctx, content.ResourceRegionCards); err == nil {
		page.Regions = regionsFromRecords(regions)
	}
	if problems, err := c.source.Collection(ctx, content.ResourceProblems); err == nil {
		page.Problems = blocksFromRecords(problems, "title")
	}
	if steps, err := c.source.Collection(ctx, content.ResourceWorkflowSteps); err == nil {
		page.WorkflowSteps = blocksFromRecords(steps, "title")
	}
	return page
}

// ProductsPage assembles the products page model.
func (c *Controller) ProductsPage(ctx context.Context) ProductsPage {
	page := ProductsPage{Products: fallbackProducts}
	if products, err := c.source.Collection(ctx, content.ResourceProducts); err == nil && len(products) > 0 {
		page.Products = productsFromRecords(products)
	}
	if useCases, err := c.source.Collection(ctx, content.ResourceUseCases); err == nil {
		page.UseCases = blocksFromRecords(useCases, "industry")
	}
	return page
}

// AboutPage assembles the about/team page model.
func (c *Controller) AboutPage(ctx context.Context) AboutPage {
	var page AboutPage
	members, err := c.source.Collection(ctx, content.ResourceTeamMembers)
	if err != nil {
		return page
	}
	page.Founders = teamFromRecords(members, "founder")
	page.Team = teamFromRecords(members, "team")
	page.Advisors = teamFromRecords(members, "advisor")
	return page
}

// RenderHome writes the landing page HTML.
func (c *Controller) RenderHome(ctx context.Context, out io.Writer) error {
	return c.render("home", c.HomePage(ctx), out)
}

// RenderProducts writes the products page HTML.
func (c *Controller) RenderProducts(ctx context.Context, out io.Writer) error {
	return c.render("products", c.ProductsPage(ctx), out)
}

// RenderAbout writes the about page HTML.
func (c *Controller) RenderAbout(ctx context.Context, out io.Writer) error {
	return c.render("about", c.AboutPage(ctx), out)
}

func (c *Controller) render(name string, data any, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("publicsite: renderer is not configured")
	}
	if _, err := c.renderer.Render(name, data, out); err != nil {
		return fmt.Errorf("publicsite: render %s: %w", name, err)
	}
	return nil
}
