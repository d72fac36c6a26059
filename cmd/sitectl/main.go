package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	"github.com/onebuyai/go-sitecms/components/content"
	"github.com/onebuyai/go-sitecms/pkg/contentstore"
)

type cli struct {
	Seed     seedCmd     `cmd:"" help:"Seed empty collections in a content database from the built-in catalog plus an optional manifest."`
	Export   exportCmd   `cmd:"" help:"Export a content database into a YAML manifest with records as seed data."`
	Scaffold scaffoldCmd `cmd:"" help:"Scaffold a resource entry in a content manifest."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Content administration utility for go-sitecms databases and manifests."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

type seedCmd struct {
	DB       string `required:"" type:"path" help:"Path to the sqlite content database (created when missing)."`
	Manifest string `type:"path" help:"Optional manifest with extra resources and seed data to register before seeding."`
}

func (cmd *seedCmd) Run(ctx context.Context) error {
	store, err := contentstore.Open(cmd.DB)
	if err != nil {
		return err
	}
	registry := content.NewRegistry()
	if cmd.Manifest != "" {
		if _, err := registry.LoadManifestFile(cmd.Manifest); err != nil {
			return err
		}
	}
	service := content.NewService(content.Options{
		Store:     store,
		Resources: registry,
	})
	created, err := service.SeedAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Seeded %d records into %s\n", created, cmd.DB)
	return nil
}

type exportCmd struct {
	DB       string `required:"" type:"path" help:"Path to the sqlite content database to export."`
	Manifest string `required:"" type:"path" help:"Destination manifest YAML file."`
	Name     string `default:"exported content" help:"Manifest name recorded in the output."`
}

func (cmd *exportCmd) Run(ctx context.Context) error {
	store, err := contentstore.Open(cmd.DB)
	if err != nil {
		return err
	}
	registry := content.NewRegistry()
	doc := &content.ContentManifest{
		Version: content.ManifestVersion,
		Name:    cmd.Name,
	}
	for _, def := range registry.Definitions() {
		records, err := store.List(ctx, def.Code)
		if err != nil {
			return err
		}
		entry := content.ManifestResource{
			Code:        def.Code,
			Name:        def.Name,
			Description: def.Description,
			Path:        def.Path,
			Kind:        string(def.Kind),
			Schema:      def.Schema,
			StatusField: def.StatusField,
			Statuses:    def.Statuses,
			Orderable:   def.Orderable,
		}
		for _, rec := range records {
			entry.Seed = append(entry.Seed, rec.Payload)
		}
		doc.Resources = append(doc.Resources, entry)
	}
	if err := writeManifest(cmd.Manifest, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Exported %d resources from %s to %s\n", len(doc.Resources), cmd.DB, cmd.Manifest)
	return nil
}

type scaffoldCmd struct {
	Code         string   `required:"" help:"Resource code (e.g. press-releases)."`
	Name         string   `required:"" help:"Display name for the resource."`
	Description  string   `help:"One-line description used in manifests."`
	Kind         string   `default:"collection" enum:"collection,singleton" help:"Resource kind."`
	Path         string   `help:"URL path segment (defaults to the kebab-case code)."`
	ManifestPath string   `required:"" type:"path" help:"Path to the content manifest YAML file to update."`
	SchemaPath   string   `type:"path" help:"Optional path to a JSON schema file for the resource payload."`
	StatusField  string   `help:"Payload field carrying a workflow status."`
	Status       []string `help:"Allowed status values (use multiple --status flags)."`
	Orderable    bool     `help:"Mark the resource as manually orderable."`
	Overwrite    bool     `help:"Overwrite an existing manifest entry if present."`
}

func (cmd *scaffoldCmd) Run(_ context.Context) error {
	manifestPath, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("sitectl: resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(manifestPath)
	if err != nil {
		return err
	}
	if !cmd.Overwrite {
		for _, res := range doc.Resources {
			if res.Code == cmd.Code {
				return fmt.Errorf("sitectl: manifest already defines resource %s (use --overwrite to replace)", cmd.Code)
			}
		}
	}

	schema, err := cmd.loadSchema()
	if err != nil {
		return err
	}

	path := cmd.Path
	if path == "" {
		path = strcase.ToKebab(cmd.Code)
	}
	entry := content.ManifestResource{
		Code:        cmd.Code,
		Name:        cmd.Name,
		Description: cmd.Description,
		Path:        path,
		Kind:        cmd.Kind,
		Schema:      schema,
		StatusField: cmd.StatusField,
		Statuses:    cmd.Status,
		Orderable:   cmd.Orderable,
	}

	if cmd.Overwrite {
		replaced := false
		for idx := range doc.Resources {
			if doc.Resources[idx].Code == cmd.Code {
				doc.Resources[idx] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Resources = append(doc.Resources, entry)
		}
	} else {
		doc.Resources = append(doc.Resources, entry)
	}

	sort.Slice(doc.Resources, func(i, j int) bool {
		return doc.Resources[i].Code < doc.Resources[j].Code
	})

	if err := writeManifest(manifestPath, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Added %s to %s\n", cmd.Code, manifestPath)
	return nil
}

func (cmd *scaffoldCmd) loadSchema() (map[string]any, error) {
	if cmd.SchemaPath == "" {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}, nil
	}
	data, err := os.ReadFile(cmd.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("sitectl: read schema file: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("sitectl: parse schema JSON: %w", err)
	}
	return schema, nil
}

func loadOrInitManifest(path string) (*content.ContentManifest, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			doc := &content.ContentManifest{
				Version:   content.ManifestVersion,
				Resources: []content.ManifestResource{},
				Source:    path,
			}
			return doc, nil
		}
		return nil, fmt.Errorf("sitectl: stat manifest: %w", err)
	}
	return content.ReadManifest(path)
}

func writeManifest(path string, doc *content.ContentManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sitectl: mkdir %s: %w", filepath.Dir(path), err)
	}
	tmpDoc := *doc
	tmpDoc.Source = ""

	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("sitectl: create manifest %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(tmpDoc); err != nil {
		return fmt.Errorf("sitectl: write manifest: %w", err)
	}
	return nil
}
