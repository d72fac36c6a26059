package content

import "testing"

func TestNewRegistryLoadsCatalog(t *testing.T) {
	reg := NewRegistry()
	defs := reg.Definitions()
	if len(defs) != len(Catalog()) {
		t.Fatalf("expected %d catalog definitions, got %d", len(Catalog()), len(defs))
	}
	for _, code := range []string{
		ResourceSiteStats,
		ResourceHeroSection,
		ResourceMapLocations,
		ResourceFlowLines,
		ResourceApplications,
		ResourceSiteSettings,
	} {
		if _, ok := reg.Definition(code); !ok {
			t.Fatalf("expected catalog to define %s", code)
		}
	}
}

func TestCatalogPathsAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, def := range Catalog() {
		if def.Path == "" {
			t.Fatalf("catalog resource %s has no path", def.Code)
		}
		if prev, ok := seen[def.Path]; ok {
			t.Fatalf("path %s shared by %s and %s", def.Path, prev, def.Code)
		}
		seen[def.Path] = def.Code
	}
}

func TestRegisterDefinitionDefaults(t *testing.T) {
	reg := NewEmptyRegistry()
	if err := reg.RegisterDefinition(ResourceDefinition{Code: "press-releases", Name: "Press Releases"}); err != nil {
		t.Fatalf("RegisterDefinition returned error: %v", err)
	}
	def, ok := reg.Definition("press-releases")
	if !ok {
		t.Fatalf("expected definition registered")
	}
	if def.Kind != KindCollection {
		t.Fatalf("expected collection default, got %s", def.Kind)
	}
	if def.Path != "press-releases" {
		t.Fatalf("expected path defaulted to code, got %s", def.Path)
	}
}

func TestRegisterDefinitionPreservesOrderOnReplace(t *testing.T) {
	reg := NewEmptyRegistry()
	_ = reg.RegisterDefinition(ResourceDefinition{Code: "a", Name: "A"})
	_ = reg.RegisterDefinition(ResourceDefinition{Code: "b", Name: "B"})
	_ = reg.RegisterDefinition(ResourceDefinition{Code: "a", Name: "A2"})
	defs := reg.Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Code != "a" || defs[0].Name != "A2" {
		t.Fatalf("expected replaced definition to keep its slot, got %#v", defs[0])
	}
}

func TestDefinitionByPath(t *testing.T) {
	reg := NewRegistry()
	def, ok := reg.DefinitionByPath("careers/applications")
	if !ok {
		t.Fatalf("expected applications resolvable by path")
	}
	if def.Code != ResourceApplications {
		t.Fatalf("expected %s, got %s", ResourceApplications, def.Code)
	}
}

func TestCatalogSeedsSatisfySchemas(t *testing.T) {
	validator := NewSchemaValidator()
	for _, def := range Catalog() {
		for i, payload := range def.Seed {
			if err := validator.Validate(def, payload); err != nil {
				t.Fatalf("seed %d of %s fails its own schema: %v", i, def.Code, err)
			}
		}
	}
}
