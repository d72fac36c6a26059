package gorouter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	router "github.com/goliatone/go-router"

	content "github.com/onebuyai/go-sitecms/components/content"
	"github.com/onebuyai/go-sitecms/components/content/commands"
	"github.com/onebuyai/go-sitecms/components/content/httpapi"
	"github.com/onebuyai/go-sitecms/components/content/queries"
)

// Gate verifies bearer tokens on privileged routes and exchanges passwords
// for session tokens.
type Gate interface {
	Login(password string) (string, error)
	Authorize(authorization string) error
}

// ActorResolver extracts an activity context from a request, typically from
// values a session middleware stored on the router context.
type ActorResolver func(router.Context) content.ActivityContext

// Config wires go-router with the content API, auth gate, and broadcast hook.
type Config[T any] struct {
	Router        router.Router[T]
	API           httpapi.Executor
	Resources     content.ResourceRegistry
	Gate          Gate
	Broadcast     *content.BroadcastHook
	ActorResolver ActorResolver
	BasePath      string
	WebSocketPath string
}

// Register mounts the REST contract on a go-router router: list/create on
// the collection path, update/delete by id, seed, status and active toggles,
// the careers review sub-resource, admin login, and the event stream.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.API == nil {
		return errors.New("gorouter: api executor is required")
	}
	if cfg.Resources == nil {
		return errors.New("gorouter: resource registry is required")
	}
	base := cfg.BasePath
	if base == "" {
		base = "/api"
	}
	resolver := cfg.ActorResolver
	if resolver == nil {
		resolver = defaultActorResolver
	}

	group := cfg.Router.Group(base)

	if cfg.Gate != nil {
		registerLogin(group, cfg.Gate)
	}

	for _, def := range cfg.Resources.Definitions() {
		if def.Kind == content.KindSingleton {
			registerSingleton(group, cfg, def, resolver)
			continue
		}
		registerCollection(group, cfg, def, resolver)
	}

	registerStatusRoutes(group, cfg, resolver)
	registerReviewRoutes(group, cfg, resolver)

	if cfg.Broadcast != nil {
		path := cfg.WebSocketPath
		if path == "" {
			path = "/events/ws"
		}
		registerWebSocket(group, cfg.Broadcast, path)
	}

	return nil
}

func registerLogin[T any](r router.Router[T], gate Gate) {
	r.Post("/admin/login", router.WrapHandler(func(ctx router.Context) error {
		var payload struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		token, err := gate.Login(payload.Password)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, map[string]any{"success": false})
		}
		return ctx.JSON(http.StatusOK, map[string]any{"success": true, "token": token})
	}))
}

func registerCollection[T any](r router.Router[T], cfg Config[T], def content.ResourceDefinition, resolver ActorResolver) {
	path := "/" + def.Path
	idPath := path + "/:id"
	// Lead-capture resources accept anonymous creates from the public site.
	publicCreate := def.Code == content.ResourceApplications ||
		def.Code == content.ResourceDemoRequests ||
		def.Code == content.ResourceSuppliers

	r.Get(path, router.WrapHandler(func(ctx router.Context) error {
		records, err := cfg.API.Collection(ctx.Context(), queries.CollectionInput{Resource: def.Code})
		if err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, records)
	}))

	r.Post(path, router.WrapHandler(func(ctx router.Context) error {
		if !publicCreate {
			if err := authorize(ctx, cfg.Gate); err != nil {
				return respondError(ctx, http.StatusUnauthorized, err)
			}
		}
		var payload map[string]any
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input := commands.CreateRecordInput{Resource: def.Code, Payload: payload}
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.Create(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Put(idPath, router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("record id is required"))
		}
		var input commands.UpdateRecordInput
		if err := json.Unmarshal(ctx.Body(), &input); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input.Resource = def.Code
		input.RecordID = id
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.Update(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Delete(idPath, router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("record id is required"))
		}
		input := commands.DeleteRecordInput{Resource: def.Code, RecordID: id}
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.Delete(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}))

	if len(def.Seed) > 0 {
		r.Post(path+"/seed", router.WrapHandler(func(ctx router.Context) error {
			if err := authorize(ctx, cfg.Gate); err != nil {
				return respondError(ctx, http.StatusUnauthorized, err)
			}
			if err := cfg.API.Seed(ctx.Context(), commands.SeedCollectionInput{Resource: def.Code}); err != nil {
				return respondError(ctx, httpapi.StatusFromError(err), err)
			}
			return ctx.JSON(http.StatusAccepted, map[string]string{"status": "seeded"})
		}))
	}
}

func registerSingleton[T any](r router.Router[T], cfg Config[T], def content.ResourceDefinition, resolver ActorResolver) {
	path := "/" + def.Path

	r.Get(path, router.WrapHandler(func(ctx router.Context) error {
		record, err := cfg.API.Record(ctx.Context(), queries.RecordInput{Resource: def.Code})
		if err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, record)
	}))

	r.Put(path, router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		record, err := cfg.API.Record(ctx.Context(), queries.RecordInput{Resource: def.Code})
		if err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		var input commands.UpdateRecordInput
		if err := json.Unmarshal(ctx.Body(), &input); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input.Resource = def.Code
		input.RecordID = record.ID
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.Update(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))
}

func registerStatusRoutes[T any](r router.Router[T], cfg Config[T], resolver ActorResolver) {
	statusResources := map[string]string{
		"/demo-requests/:id/status":        content.ResourceDemoRequests,
		"/supplier-requests/:id/status":    content.ResourceSuppliers,
		"/careers/applications/:id/status": content.ResourceApplications,
	}
	for path, code := range statusResources {
		resource := code
		r.Patch(path, router.WrapHandler(func(ctx router.Context) error {
			if err := authorize(ctx, cfg.Gate); err != nil {
				return respondError(ctx, http.StatusUnauthorized, err)
			}
			id := ctx.Param("id")
			status := ctx.Query("status")
			if id == "" || status == "" {
				return respondError(ctx, http.StatusBadRequest, errors.New("record id and status are required"))
			}
			input := commands.SetStatusInput{Resource: resource, RecordID: id, Status: status}
			applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
			if err := cfg.API.SetStatus(ctx.Context(), input); err != nil {
				return respondError(ctx, httpapi.StatusFromError(err), err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": status})
		}))
	}

	r.Patch("/news/queries/:id", router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("record id is required"))
		}
		active, err := strconv.ParseBool(ctx.Query("isActive"))
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, errors.New("isActive must be a boolean"))
		}
		input := commands.SetActiveInput{Resource: content.ResourceNewsQueries, RecordID: id, Active: active}
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.SetActive(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]bool{"isActive": active})
	}))
}

func registerReviewRoutes[T any](r router.Router[T], cfg Config[T], resolver ActorResolver) {
	r.Post("/careers/applications/:id/reviews", router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("application id is required"))
		}
		var input commands.AddReviewInput
		if err := json.Unmarshal(ctx.Body(), &input); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input.ApplicationID = id
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.AddReview(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Delete("/careers/applications/:id/reviews/:reviewId", router.WrapHandler(func(ctx router.Context) error {
		if err := authorize(ctx, cfg.Gate); err != nil {
			return respondError(ctx, http.StatusUnauthorized, err)
		}
		input := commands.RemoveReviewInput{
			ApplicationID: ctx.Param("id"),
			ReviewID:      ctx.Param("reviewId"),
		}
		if input.ApplicationID == "" || input.ReviewID == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("application and review ids are required"))
		}
		applyActor(&input.ActorID, &input.UserID, &input.TenantID, resolver(ctx))
		if err := cfg.API.RemoveReview(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusFromError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "removed"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *content.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func authorize(ctx router.Context, gate Gate) error {
	if gate == nil {
		return nil
	}
	return gate.Authorize(ctx.Header("Authorization"))
}

func applyActor(actorID, userID, tenantID *string, meta content.ActivityContext) {
	*actorID = meta.ActorID
	*userID = meta.UserID
	*tenantID = meta.TenantID
}

func defaultActorResolver(ctx router.Context) content.ActivityContext {
	var meta content.ActivityContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		meta.ActorID = v
		meta.UserID = v
	}
	if v, ok := ctx.Locals("tenant_id").(string); ok {
		meta.TenantID = v
	}
	return meta
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}
