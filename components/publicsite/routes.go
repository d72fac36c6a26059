package publicsite

import (
	"bytes"
	"errors"
	"net/http"

	router "github.com/goliatone/go-router"
)

// RegisterPages mounts the marketing pages on a go-router router.
func RegisterPages[T any](r router.Router[T], controller *Controller) error {
	if r == nil {
		return errors.New("publicsite: router is required")
	}
	if controller == nil {
		return errors.New("publicsite: controller is required")
	}
	pages := map[string]func(ctx router.Context, buf *bytes.Buffer) error{
		"/": func(ctx router.Context, buf *bytes.Buffer) error {
			return controller.RenderHome(ctx.Context(), buf)
		},
		"/products": func(ctx router.Context, buf *bytes.Buffer) error {
			return controller.RenderProducts(ctx.Context(), buf)
		},
		"/about": func(ctx router.Context, buf *bytes.Buffer) error {
			return controller.RenderAbout(ctx.Context(), buf)
		},
	}
	for path, render := range pages {
		render := render
		r.Get(path, router.WrapHandler(func(ctx router.Context) error {
			var buf bytes.Buffer
			if err := render(ctx, &buf); err != nil {
				return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
			return ctx.Send(buf.Bytes())
		}))
	}
	return nil
}
