package adminshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	content "github.com/onebuyai/go-sitecms/components/content"
)

// ResourceClient issues the mutations a manager needs. The REST client and
// the content service both satisfy it.
type ResourceClient interface {
	Create(ctx context.Context, resource string, payload map[string]any) error
	Update(ctx context.Context, resource, id string, payload map[string]any, version int64) error
	Delete(ctx context.Context, resource, id string) error
	Seed(ctx context.Context, resource string) error
}

// Notifier surfaces transient user-facing messages.
type Notifier interface {
	Notify(level, message string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) {}

// ManagerOptions wires one resource manager.
type ManagerOptions struct {
	Definition content.ResourceDefinition
	Client     ResourceClient
	Shell      *Shell
	Notifier   Notifier
	// Defaults seeds the create form. Nil means an empty form.
	Defaults map[string]any
}

// Manager drives the create/edit dialog and mutation flow for one resource.
// It never mutates the shell's collection directly: every visible change
// arrives through the next refresh.
type Manager struct {
	opts ManagerOptions

	editing    *content.Record
	dialogOpen bool
	form       map[string]any
	saving     bool
}

// NewManager builds a manager for one catalog resource.
func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.Definition.Code == "" {
		return nil, errors.New("adminshell: resource definition is required")
	}
	if opts.Client == nil {
		return nil, errors.New("adminshell: resource client is required")
	}
	if opts.Shell == nil {
		return nil, errors.New("adminshell: shell is required")
	}
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}
	return &Manager{opts: opts}, nil
}

// Collection returns the manager's current records from the shell.
func (m *Manager) Collection() []content.Record {
	return m.opts.Shell.Collection(m.opts.Definition.Code)
}

// OpenCreate resets the form to defaults and opens the dialog. Orderable
// resources get order preset to the end of the collection.
func (m *Manager) OpenCreate() {
	m.editing = nil
	m.form = map[string]any{}
	for k, v := range m.opts.Defaults {
		m.form[k] = v
	}
	if m.opts.Definition.Orderable {
		m.form["order"] = len(m.Collection())
	}
	m.dialogOpen = true
}

// OpenEdit seeds the form from an existing record and opens the dialog.
func (m *Manager) OpenEdit(item content.Record) {
	cloned := item.Clone()
	m.editing = &cloned
	m.form = cloned.Payload
	if m.form == nil {
		m.form = map[string]any{}
	}
	m.dialogOpen = true
}

// SetField updates one form field.
func (m *Manager) SetField(field string, value any) {
	if m.form == nil {
		m.form = map[string]any{}
	}
	m.form[field] = value
}

// DialogOpen reports whether the edit dialog is showing.
func (m *Manager) DialogOpen() bool { return m.dialogOpen }

// Saving reports whether a mutation is in flight.
func (m *Manager) Saving() bool { return m.saving }

// Save validates required fields locally, then issues the create or update.
// Validation failure sends nothing over the wire. A failed request keeps the
// dialog open with the submission intact; success closes it and refreshes
// exactly once.
func (m *Manager) Save(ctx context.Context) error {
	if missing := m.missingFields(); len(missing) > 0 {
		err := fmt.Errorf("adminshell: %s required", strings.Join(missing, ", "))
		m.opts.Notifier.Notify("error", err.Error())
		return err
	}
	m.saving = true
	defer func() { m.saving = false }()

	var err error
	if m.editing == nil {
		err = m.opts.Client.Create(ctx, m.opts.Definition.Code, m.form)
	} else {
		err = m.opts.Client.Update(ctx, m.opts.Definition.Code, m.editing.ID, m.form, m.editing.Version)
	}
	if err != nil {
		m.opts.Notifier.Notify("error", fmt.Sprintf("save %s failed: %v", m.opts.Definition.Name, err))
		return err
	}
	m.dialogOpen = false
	m.editing = nil
	m.opts.Shell.Refresh(ctx)
	m.opts.Notifier.Notify("success", fmt.Sprintf("%s saved", m.opts.Definition.Name))
	return nil
}

// Delete removes a record after explicit confirmation. An already-deleted
// record degrades to a notification plus refresh rather than an error.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errors.New("adminshell: delete requires confirmation")
	}
	if err := m.opts.Client.Delete(ctx, m.opts.Definition.Code, id); err != nil {
		if errors.Is(err, content.ErrRecordNotFound) {
			m.opts.Notifier.Notify("info", "item was already removed")
			m.opts.Shell.Refresh(ctx)
			return nil
		}
		m.opts.Notifier.Notify("error", fmt.Sprintf("delete failed: %v", err))
		return err
	}
	m.opts.Shell.Refresh(ctx)
	return nil
}

// Seed loads defaults for an empty collection; it refuses on non-empty ones.
func (m *Manager) Seed(ctx context.Context) error {
	if len(m.Collection()) > 0 {
		return fmt.Errorf("adminshell: %s already has records", m.opts.Definition.Code)
	}
	if err := m.opts.Client.Seed(ctx, m.opts.Definition.Code); err != nil {
		m.opts.Notifier.Notify("error", fmt.Sprintf("seed failed: %v", err))
		return err
	}
	m.opts.Shell.Refresh(ctx)
	return nil
}

// ToggleActive sends a single-field update flipping isActive.
func (m *Manager) ToggleActive(ctx context.Context, item content.Record, active bool) error {
	payload := map[string]any{"isActive": active}
	if err := m.opts.Client.Update(ctx, m.opts.Definition.Code, item.ID, payload, item.Version); err != nil {
		m.opts.Notifier.Notify("error", fmt.Sprintf("toggle failed: %v", err))
		return err
	}
	m.opts.Shell.Refresh(ctx)
	return nil
}

// missingFields checks the schema's required entries for presence only.
func (m *Manager) missingFields() []string {
	var missing []string
	for _, field := range requiredFields(m.opts.Definition.Schema) {
		value, ok := m.form[field]
		if !ok || value == nil {
			missing = append(missing, field)
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func requiredFields(schema map[string]any) []string {
	switch raw := schema["required"].(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
