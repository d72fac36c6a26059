package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	content "github.com/onebuyai/go-sitecms/components/content"
	"github.com/onebuyai/go-sitecms/components/content/commands"
	"github.com/onebuyai/go-sitecms/components/content/queries"
)

// Executor is the surface transports use to run content operations.
type Executor interface {
	Create(ctx context.Context, input commands.CreateRecordInput) error
	Update(ctx context.Context, input commands.UpdateRecordInput) error
	Delete(ctx context.Context, input commands.DeleteRecordInput) error
	Seed(ctx context.Context, input commands.SeedCollectionInput) error
	SetStatus(ctx context.Context, input commands.SetStatusInput) error
	SetActive(ctx context.Context, input commands.SetActiveInput) error
	AddReview(ctx context.Context, input commands.AddReviewInput) error
	RemoveReview(ctx context.Context, input commands.RemoveReviewInput) error
	Collection(ctx context.Context, input queries.CollectionInput) ([]content.Record, error)
	Record(ctx context.Context, input queries.RecordInput) (content.Record, error)
	Snapshot(ctx context.Context) (queries.SnapshotResult, error)
}

// CommandExecutor implements Executor over go-command wrappers.
type CommandExecutor struct {
	CreateCmd       gocommand.Commander[commands.CreateRecordInput]
	UpdateCmd       gocommand.Commander[commands.UpdateRecordInput]
	DeleteCmd       gocommand.Commander[commands.DeleteRecordInput]
	SeedCmd         gocommand.Commander[commands.SeedCollectionInput]
	StatusCmd       gocommand.Commander[commands.SetStatusInput]
	ActiveCmd       gocommand.Commander[commands.SetActiveInput]
	AddReviewCmd    gocommand.Commander[commands.AddReviewInput]
	RemoveReviewCmd gocommand.Commander[commands.RemoveReviewInput]
	CollectionQry   gocommand.Querier[queries.CollectionInput, []content.Record]
	RecordQry       gocommand.Querier[queries.RecordInput, content.Record]
	SnapshotQry     gocommand.Querier[queries.SnapshotInput, queries.SnapshotResult]
}

// NewCommandExecutor wires the full command/query set for a service.
func NewCommandExecutor(service *content.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		CreateCmd:       commands.NewCreateRecordCommand(service, telemetry),
		UpdateCmd:       commands.NewUpdateRecordCommand(service, telemetry),
		DeleteCmd:       commands.NewDeleteRecordCommand(service, telemetry),
		SeedCmd:         commands.NewSeedCollectionCommand(service, telemetry),
		StatusCmd:       commands.NewSetStatusCommand(service, telemetry),
		ActiveCmd:       commands.NewSetActiveCommand(service, telemetry),
		AddReviewCmd:    commands.NewAddReviewCommand(service, telemetry),
		RemoveReviewCmd: commands.NewRemoveReviewCommand(service, telemetry),
		CollectionQry:   queries.NewCollectionQuery(service),
		RecordQry:       queries.NewRecordQuery(service),
		SnapshotQry:     queries.NewSnapshotQuery(service),
	}
}

var _ Executor = (*CommandExecutor)(nil)

func (e *CommandExecutor) Create(ctx context.Context, input commands.CreateRecordInput) error {
	return e.CreateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Update(ctx context.Context, input commands.UpdateRecordInput) error {
	return e.UpdateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Delete(ctx context.Context, input commands.DeleteRecordInput) error {
	return e.DeleteCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Seed(ctx context.Context, input commands.SeedCollectionInput) error {
	return e.SeedCmd.Execute(ctx, input)
}

func (e *CommandExecutor) SetStatus(ctx context.Context, input commands.SetStatusInput) error {
	return e.StatusCmd.Execute(ctx, input)
}

func (e *CommandExecutor) SetActive(ctx context.Context, input commands.SetActiveInput) error {
	return e.ActiveCmd.Execute(ctx, input)
}

func (e *CommandExecutor) AddReview(ctx context.Context, input commands.AddReviewInput) error {
	return e.AddReviewCmd.Execute(ctx, input)
}

func (e *CommandExecutor) RemoveReview(ctx context.Context, input commands.RemoveReviewInput) error {
	return e.RemoveReviewCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Collection(ctx context.Context, input queries.CollectionInput) ([]content.Record, error) {
	return e.CollectionQry.Query(ctx, input)
}

func (e *CommandExecutor) Record(ctx context.Context, input queries.RecordInput) (content.Record, error) {
	return e.RecordQry.Query(ctx, input)
}

func (e *CommandExecutor) Snapshot(ctx context.Context) (queries.SnapshotResult, error) {
	return e.SnapshotQry.Query(ctx, queries.SnapshotInput{})
}

// StatusFromError maps service sentinel errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, content.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, content.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, content.ErrRecordInUse),
		errors.Is(err, content.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Handlers exposes plain net/http endpoints backed by shared commands, for
// hosts that do not mount the go-router surface.
type Handlers struct {
	API Executor
}

func (h *Handlers) HandleCreateRecord(w http.ResponseWriter, r *http.Request, resource string) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input := commands.CreateRecordInput{Resource: resource, Payload: payload}
	if err := h.API.Create(r.Context(), input); err != nil {
		writeError(w, StatusFromError(err), err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleListRecords(w http.ResponseWriter, r *http.Request, resource string) {
	records, err := h.API.Collection(r.Context(), queries.CollectionInput{Resource: resource})
	if err != nil {
		writeError(w, StatusFromError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handlers) HandleUpdateRecord(w http.ResponseWriter, r *http.Request, resource, id string) {
	var input commands.UpdateRecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input.Resource = resource
	input.RecordID = id
	if err := h.API.Update(r.Context(), input); err != nil {
		writeError(w, StatusFromError(err), err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleDeleteRecord(w http.ResponseWriter, r *http.Request, resource, id string) {
	input := commands.DeleteRecordInput{Resource: resource, RecordID: id}
	if err := h.API.Delete(r.Context(), input); err != nil {
		writeError(w, StatusFromError(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleSeedCollection(w http.ResponseWriter, r *http.Request, resource string) {
	input := commands.SeedCollectionInput{Resource: resource}
	if err := h.API.Seed(r.Context(), input); err != nil {
		writeError(w, StatusFromError(err), err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
