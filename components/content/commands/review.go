package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
	content "github.com/onebuyai/go-sitecms/components/content"
)

// AddReviewInput appends an interview review to a careers application.
type AddReviewInput struct {
	ApplicationID    string `json:"application_id"`
	InterviewerEmail string `json:"interviewer_email"`
	Comments         string `json:"comments"`
	InterviewDate    string `json:"interview_date"`
	NextSteps        string `json:"next_steps"`
	ActorID          string `json:"actor_id"`
	UserID           string `json:"user_id"`
	TenantID         string `json:"tenant_id"`
}

type reviewService interface {
	GetRecord(ctx context.Context, resource, id string) (content.Record, error)
	UpdateRecord(ctx context.Context, resource, id string, req content.UpdateRecordRequest) (content.Record, error)
}

// AddReviewCommand appends to the application's embedded review list via a
// version-guarded read-modify-write.
type AddReviewCommand struct {
	service   reviewService
	telemetry Telemetry
}

// NewAddReviewCommand creates the command.
func NewAddReviewCommand(service reviewService, telemetry Telemetry) *AddReviewCommand {
	return &AddReviewCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddReviewInput] = (*AddReviewCommand)(nil)

// Execute appends the review and persists the application.
func (c *AddReviewCommand) Execute(ctx context.Context, msg AddReviewInput) error {
	if c.service == nil {
		return errors.New("review command requires service")
	}
	if msg.ApplicationID == "" {
		return errors.New("review command requires application id")
	}
	if msg.InterviewerEmail == "" {
		return errors.New("review command requires interviewer email")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	app, err := c.service.GetRecord(ctx, content.ResourceApplications, msg.ApplicationID)
	if err != nil {
		return err
	}
	review := map[string]any{
		"reviewId":         uuid.NewString(),
		"interviewerEmail": msg.InterviewerEmail,
		"comments":         msg.Comments,
		"interviewDate":    msg.InterviewDate,
		"nextSteps":        msg.NextSteps,
		"createdAt":        time.Now().UTC().Format(time.RFC3339),
	}
	reviews := append(reviewList(app), review)
	if _, err := c.service.UpdateRecord(ctx, content.ResourceApplications, msg.ApplicationID, content.UpdateRecordRequest{
		Payload: map[string]any{"reviews": reviews},
		Version: app.Version,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.review.add", map[string]any{
		"application_id": msg.ApplicationID,
	})
	return nil
}

// RemoveReviewInput deletes one review from an application.
type RemoveReviewInput struct {
	ApplicationID string `json:"application_id"`
	ReviewID      string `json:"review_id"`
	ActorID       string `json:"actor_id"`
	UserID        string `json:"user_id"`
	TenantID      string `json:"tenant_id"`
}

// RemoveReviewCommand removes an embedded review by id.
type RemoveReviewCommand struct {
	service   reviewService
	telemetry Telemetry
}

// NewRemoveReviewCommand creates the command.
func NewRemoveReviewCommand(service reviewService, telemetry Telemetry) *RemoveReviewCommand {
	return &RemoveReviewCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RemoveReviewInput] = (*RemoveReviewCommand)(nil)

// Execute removes the review and persists the application.
func (c *RemoveReviewCommand) Execute(ctx context.Context, msg RemoveReviewInput) error {
	if c.service == nil {
		return errors.New("review command requires service")
	}
	if msg.ApplicationID == "" || msg.ReviewID == "" {
		return errors.New("review command requires application and review ids")
	}
	ctx = content.ContextWithActivity(ctx, content.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	app, err := c.service.GetRecord(ctx, content.ResourceApplications, msg.ApplicationID)
	if err != nil {
		return err
	}
	reviews := reviewList(app)
	kept := make([]any, 0, len(reviews))
	for _, raw := range reviews {
		review, ok := raw.(map[string]any)
		if ok {
			if id, _ := review["reviewId"].(string); id == msg.ReviewID {
				continue
			}
		}
		kept = append(kept, raw)
	}
	if len(kept) == len(reviews) {
		return fmt.Errorf("%w: review %s on application %s",
			content.ErrRecordNotFound, msg.ReviewID, msg.ApplicationID)
	}
	if _, err := c.service.UpdateRecord(ctx, content.ResourceApplications, msg.ApplicationID, content.UpdateRecordRequest{
		Payload: map[string]any{"reviews": kept},
		Version: app.Version,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "content.command.review.remove", map[string]any{
		"application_id": msg.ApplicationID,
		"review_id":      msg.ReviewID,
	})
	return nil
}

func reviewList(app content.Record) []any {
	raw, _ := app.Payload["reviews"].([]any)
	return raw
}
