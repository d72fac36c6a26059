package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// ContentManifest models a YAML manifest describing resources and seed data.
type ContentManifest struct {
	Version   string             `json:"version" yaml:"version"`
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Resources []ManifestResource `json:"resources" yaml:"resources"`
	Source    string             `json:"-" yaml:"-"`
}

// ManifestResource describes a single resource entry within a manifest.
type ManifestResource struct {
	Code        string           `json:"code" yaml:"code"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Path        string           `json:"path,omitempty" yaml:"path,omitempty"`
	Kind        string           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Schema      map[string]any   `json:"schema,omitempty" yaml:"schema,omitempty"`
	StatusField string           `json:"status_field,omitempty" yaml:"status_field,omitempty"`
	Statuses    []string         `json:"statuses,omitempty" yaml:"statuses,omitempty"`
	Orderable   bool             `json:"orderable,omitempty" yaml:"orderable,omitempty"`
	Seed        []map[string]any `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LoadManifestFile reads a manifest from disk and registers it against the registry.
func (r *Registry) LoadManifestFile(path string) (*ContentManifest, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers resource definitions from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *ContentManifest) error {
	if doc == nil {
		return fmt.Errorf("content: manifest document is nil")
	}
	for _, res := range doc.Resources {
		if err := r.RegisterDefinition(res.Definition()); err != nil {
			return fmt.Errorf("content: register resource %s from %s: %w", res.Code, doc.Source, err)
		}
	}
	return nil
}

// Definition converts a manifest entry into a ResourceDefinition.
func (m ManifestResource) Definition() ResourceDefinition {
	kind := ResourceKind(m.Kind)
	if kind == "" {
		kind = KindCollection
	}
	return ResourceDefinition{
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Path:        m.Path,
		Kind:        kind,
		Schema:      m.Schema,
		StatusField: m.StatusField,
		Statuses:    m.Statuses,
		Orderable:   m.Orderable,
		Seed:        m.Seed,
	}
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*ContentManifest, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("content: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("content: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*ContentManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc ContentManifest
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("content: manifest is empty")
		}
		return nil, fmt.Errorf("content: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *ContentManifest) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("content: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Resources))
	for idx, res := range doc.Resources {
		if res.Code == "" {
			return fmt.Errorf("content: manifest resource at index %d is missing code", idx)
		}
		if res.Name == "" {
			return fmt.Errorf("content: manifest resource %s missing name", res.Code)
		}
		switch res.Kind {
		case "", string(KindCollection), string(KindSingleton):
		default:
			return fmt.Errorf("content: manifest resource %s has unknown kind %q", res.Code, res.Kind)
		}
		if _, exists := seen[res.Code]; exists {
			return fmt.Errorf("content: manifest duplicates resource code %s", res.Code)
		}
		seen[res.Code] = struct{}{}
	}
	return nil
}

func (doc *ContentManifest) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}
