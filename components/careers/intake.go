package careers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ettle/strcase"
)

// MaxResumeSize caps uploads at 5 MiB, rejected before any network call.
const MaxResumeSize = 5 << 20

var (
	// ErrResumeTooLarge reports an upload over MaxResumeSize.
	ErrResumeTooLarge = errors.New("careers: resume exceeds 5MB limit")
	// ErrResumeType reports an extension outside pdf/doc/docx.
	ErrResumeType = errors.New("careers: resume must be a .pdf, .doc, or .docx file")
	// ErrMissingFields reports an application without its required fields.
	ErrMissingFields = errors.New("careers: name, email, and role are required")
)

var resumeMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

const fallbackMIMEType = "application/octet-stream"

// Application is a careers form submission.
type Application struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	Role        string `json:"role"`
	Experience  string `json:"experience,omitempty"`
	WhyJoin     string `json:"whyJoin,omitempty"`
}

// Resume is an uploaded file before encoding.
type Resume struct {
	FileName string
	Data     []byte
}

// ValidateResume enforces the type and size limits.
func ValidateResume(fileName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := resumeMIMETypes[ext]; !ok {
		return fmt.Errorf("%w: got %q", ErrResumeType, ext)
	}
	if size > MaxResumeSize {
		return fmt.Errorf("%w: %d bytes", ErrResumeTooLarge, size)
	}
	return nil
}

// MIMEType infers the content type from the file extension, falling back to
// a binary stream for anything unknown.
func MIMEType(fileName string) string {
	if mime, ok := resumeMIMETypes[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mime
	}
	return fallbackMIMEType
}

// EncodeResume produces the base64 payload stored on the application record.
func EncodeResume(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeResume converts a stored base64 payload back to file bytes plus the
// MIME type to serve it under. No server round-trip is involved.
func DecodeResume(encoded, fileName string) ([]byte, string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("careers: decode resume %s: %w", fileName, err)
	}
	return data, MIMEType(fileName), nil
}

// RoleSlug derives a stable role id from its title.
func RoleSlug(title string) string {
	return strcase.ToKebab(title)
}

// Submitter sends a validated application to the backend.
type Submitter interface {
	SubmitApplication(ctx context.Context, payload map[string]any) error
}

// Intake validates and submits applications.
type Intake struct {
	submitter Submitter
}

// NewIntake builds an intake front for the given submitter.
func NewIntake(submitter Submitter) (*Intake, error) {
	if submitter == nil {
		return nil, errors.New("careers: submitter is required")
	}
	return &Intake{submitter: submitter}, nil
}

// Submit validates the form and resume, then sends the application. Invalid
// input returns before anything touches the network.
func (i *Intake) Submit(ctx context.Context, app Application, resume *Resume) error {
	if app.Name == "" || app.Email == "" || app.Role == "" {
		return ErrMissingFields
	}
	payload := map[string]any{
		"name":   app.Name,
		"email":  app.Email,
		"role":   app.Role,
		"status": "new",
	}
	if app.Phone != "" {
		payload["phone"] = app.Phone
	}
	if app.LinkedinURL != "" {
		payload["linkedinUrl"] = app.LinkedinURL
	}
	if app.Experience != "" {
		payload["experience"] = app.Experience
	}
	if app.WhyJoin != "" {
		payload["whyJoin"] = app.WhyJoin
	}
	if resume != nil {
		if err := ValidateResume(resume.FileName, int64(len(resume.Data))); err != nil {
			return err
		}
		payload["resumeData"] = EncodeResume(resume.Data)
		payload["resumeFileName"] = resume.FileName
	}
	return i.submitter.SubmitApplication(ctx, payload)
}
