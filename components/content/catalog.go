package content

// Resource codes for the 1Buy.AI site catalog. Codes identify resources in
// the registry and store; Path is the REST segment under /api.
const (
	ResourceSiteStats     = "site-stats"
	ResourceHeroSection   = "hero-section"
	ResourceCustomerLogos = "customer-logos"
	ResourceProducts      = "products"
	ResourceMapLocations  = "map-locations"
	ResourceFlowLines     = "flow-lines"
	ResourceRegionCards   = "region-cards"
	ResourceTestimonials  = "testimonials"
	ResourceTeamMembers   = "team-members"
	ResourceProblems      = "problems"
	ResourceWorkflowSteps = "workflow-steps"
	ResourceUseCases      = "use-cases"
	ResourceBenefits      = "careers-benefits"
	ResourceRoles         = "careers-roles"
	ResourceApplications  = "careers-applications"
	ResourceDemoRequests  = "demo-requests"
	ResourceSuppliers     = "supplier-requests"
	ResourceRiskCats      = "risk-categories"
	ResourceNewsQueries   = "news-queries"
	ResourceSiteSettings  = "site-settings"
)

// Status sets enforced server-side per resource.
var (
	ApplicationStatuses = []string{"new", "reviewed", "shortlisted", "rejected"}
	DemoRequestStatuses = []string{"new", "contacted", "converted", "closed"}
	SupplierStatuses    = []string{"new", "contacted", "approved", "rejected"}
)

var catalogDefinitions = []ResourceDefinition{
	{
		Code:        ResourceSiteStats,
		Name:        "Site Stats",
		Description: "Headline metrics shown in the stats bar",
		Path:        "site-stats",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"key", "value", "label"},
			"properties": map[string]any{
				"key":         map[string]any{"type": "string", "minLength": 1},
				"value":       map[string]any{"type": "string", "minLength": 1},
				"label":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"order":       map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{"key": "cost-savings", "value": "15-20%", "label": "Cost Savings", "description": "Average direct-material savings in year one"},
			{"key": "cycle-time", "value": "60%", "label": "Faster Sourcing Cycles", "description": "Reduction in RFQ-to-award time"},
			{"key": "suppliers", "value": "4,000+", "label": "Vetted Suppliers", "description": "Suppliers across 30 categories"},
			{"key": "coverage", "value": "25", "label": "Countries Covered", "description": "Sourcing and data coverage"},
		},
	},
	{
		Code:        ResourceHeroSection,
		Name:        "Hero Section",
		Description: "Home page hero copy and screenshot",
		Path:        "hero-section",
		Kind:        KindSingleton,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline":      map[string]any{"type": "string"},
				"subHeadline":   map[string]any{"type": "string"},
				"ctaPrimary":    map[string]any{"type": "string"},
				"ctaSecondary":  map[string]any{"type": "string"},
				"screenshotUrl": map[string]any{"type": "string"},
			},
		},
		Seed: []map[string]any{
			{
				"headline":     "AI-powered sourcing for industrial buyers",
				"subHeadline":  "Find, qualify, and manage suppliers in days, not months.",
				"ctaPrimary":   "Request a Demo",
				"ctaSecondary": "See Products",
			},
		},
	},
	{
		Code:        ResourceCustomerLogos,
		Name:        "Customer Logos",
		Description: "Client logo strip",
		Path:        "customer-logos",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name"},
			"properties": map[string]any{
				"name":    map[string]any{"type": "string", "minLength": 1},
				"logoUrl": map[string]any{"type": "string"},
				"order":   map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{"name": "Meridian Industrial"},
			{"name": "Northgate Components"},
			{"name": "Arcadia Polymers"},
		},
	},
	{
		Code:        ResourceProducts,
		Name:        "Products",
		Description: "Product grid entries",
		Path:        "products",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"productId", "name", "tagline"},
			"properties": map[string]any{
				"productId":   map[string]any{"type": "string", "minLength": 1},
				"name":        map[string]any{"type": "string", "minLength": 1},
				"tagline":     map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"features":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"benefits":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"icon":        map[string]any{"type": "string"},
				"order":       map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{
				"productId":   "supplier-discovery",
				"name":        "Supplier Discovery",
				"tagline":     "Qualified suppliers in days",
				"description": "AI-ranked supplier shortlists across 30 categories.",
				"features":    []any{"Category search", "Capability matching", "Risk screening"},
				"benefits":    []any{"Shorter sourcing cycles", "Broader supplier base"},
				"icon":        "search",
			},
			{
				"productId":   "rfq-automation",
				"name":        "RFQ Automation",
				"tagline":     "From spec to award without spreadsheets",
				"description": "Structured RFQs, side-by-side quotes, one-click award.",
				"features":    []any{"Quote comparison", "Audit trail"},
				"benefits":    []any{"Fewer errors", "Full visibility"},
				"icon":        "file-text",
			},
		},
	},
	{
		Code:        ResourceMapLocations,
		Name:        "Map Locations",
		Description: "Markers on the sourcing world map, percentage coordinates",
		Path:        "map-locations",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name", "x", "y", "type"},
			"properties": map[string]any{
				"name":  map[string]any{"type": "string", "minLength": 1},
				"x":     map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"y":     map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"type":  map[string]any{"type": "string", "enum": []string{"Sourcing Hub", "Data Source"}},
				"order": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{"name": "Shenzhen", "x": 79.0, "y": 46.0, "type": "Sourcing Hub"},
			{"name": "Mumbai", "x": 66.5, "y": 50.5, "type": "Sourcing Hub"},
			{"name": "Rotterdam", "x": 48.0, "y": 30.0, "type": "Data Source"},
			{"name": "Chicago", "x": 24.0, "y": 34.0, "type": "Data Source"},
		},
	},
	{
		Code:        ResourceFlowLines,
		Name:        "Flow Lines",
		Description: "Curved trade-flow connectors between named map locations",
		Path:        "flow-lines",
		Kind:        KindCollection,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"fromLocation", "toLocation", "color"},
			"properties": map[string]any{
				"fromLocation": map[string]any{"type": "string", "minLength": 1},
				"toLocation":   map[string]any{"type": "string", "minLength": 1},
				"color":        map[string]any{"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"},
				"curveBelow":   map[string]any{"type": "boolean"},
				"isActive":     map[string]any{"type": "boolean"},
			},
		},
		References: []ReferenceRule{
			{Field: "fromLocation", Resource: ResourceMapLocations, TargetField: "name"},
			{Field: "toLocation", Resource: ResourceMapLocations, TargetField: "name"},
		},
		Seed: []map[string]any{
			{"fromLocation": "Shenzhen", "toLocation": "Rotterdam", "color": "#2dd4bf", "curveBelow": false, "isActive": true},
			{"fromLocation": "Mumbai", "toLocation": "Chicago", "color": "#60a5fa", "curveBelow": true, "isActive": true},
		},
	},
	{
		Code:        ResourceRegionCards,
		Name:        "Region Cards",
		Description: "Sourcing region summary cards",
		Path:        "region-cards",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name", "countries"},
			"properties": map[string]any{
				"name":      map[string]any{"type": "string", "minLength": 1},
				"countries": map[string]any{"type": "string", "minLength": 1},
				"icon":      map[string]any{"type": "string"},
				"type":      map[string]any{"type": "string"},
				"order":     map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{"name": "East Asia", "countries": "China, Vietnam, Taiwan", "icon": "🏭", "type": "manufacturing"},
			{"name": "South Asia", "countries": "India, Bangladesh", "icon": "🧵", "type": "textiles"},
			{"name": "Europe", "countries": "Germany, Poland, Netherlands", "icon": "⚙️", "type": "precision"},
		},
	},
	{
		Code:        ResourceTestimonials,
		Name:        "Testimonials",
		Description: "Customer quotes, toggleable per quote",
		Path:        "testimonials",
		Kind:        KindCollection,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"quote", "author"},
			"properties": map[string]any{
				"quote":    map[string]any{"type": "string", "minLength": 1},
				"author":   map[string]any{"type": "string", "minLength": 1},
				"company":  map[string]any{"type": "string"},
				"industry": map[string]any{"type": "string"},
				"isActive": map[string]any{"type": "boolean"},
			},
		},
		Seed: []map[string]any{
			{"quote": "We cut our sourcing cycle from nine weeks to three.", "author": "Head of Procurement", "company": "Meridian Industrial", "industry": "Automotive", "isActive": true},
			{"quote": "The supplier risk feed caught an issue our team would have missed.", "author": "VP Supply Chain", "company": "Arcadia Polymers", "industry": "Chemicals", "isActive": true},
		},
	},
	{
		Code:        ResourceTeamMembers,
		Name:        "Team Members",
		Description: "About page people",
		Path:        "team-members",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name", "role", "type"},
			"properties": map[string]any{
				"name":      map[string]any{"type": "string", "minLength": 1},
				"role":      map[string]any{"type": "string", "minLength": 1},
				"bio":       map[string]any{"type": "string"},
				"expertise": map[string]any{"type": "string"},
				"education": map[string]any{"type": "string"},
				"linkedin":  map[string]any{"type": "string"},
				"type":      map[string]any{"type": "string", "enum": []string{"founder", "team", "advisor"}},
				"order":     map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
	{
		Code:        ResourceProblems,
		Name:        "Problems",
		Description: "Problem statement content blocks",
		Path:        "problems",
		Kind:        KindCollection,
		Orderable:   true,
		Schema:      contentBlockSchema("title"),
		Seed: []map[string]any{
			{"title": "Opaque supplier markets", "description": "Buyers rely on stale directories and word of mouth.", "icon": "eye-off"},
			{"title": "Manual RFQ grind", "description": "Weeks lost to spreadsheets and email chains.", "icon": "mail"},
		},
	},
	{
		Code:        ResourceWorkflowSteps,
		Name:        "Workflow Steps",
		Description: "How-it-works steps",
		Path:        "workflow-steps",
		Kind:        KindCollection,
		Orderable:   true,
		Schema:      contentBlockSchema("title"),
		Seed: []map[string]any{
			{"title": "Describe your need", "description": "Upload a spec or pick a category.", "icon": "edit"},
			{"title": "Review matches", "description": "Ranked suppliers with risk and capability scores.", "icon": "list"},
			{"title": "Run the RFQ", "description": "Structured quotes, side by side.", "icon": "columns"},
		},
	},
	{
		Code:        ResourceUseCases,
		Name:        "Use Cases",
		Description: "Industry use-case blocks",
		Path:        "use-cases",
		Kind:        KindCollection,
		Orderable:   true,
		Schema:      contentBlockSchema("industry"),
		Seed: []map[string]any{
			{"industry": "Automotive", "description": "Tier-2 component sourcing with risk screening.", "icon": "truck"},
			{"industry": "Consumer Electronics", "description": "Alternate-supplier discovery under allocation.", "icon": "cpu"},
		},
	},
	{
		Code:        ResourceBenefits,
		Name:        "Career Benefits",
		Description: "Careers page benefit cards",
		Path:        "careers/benefits",
		Kind:        KindCollection,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"title", "description"},
			"properties": map[string]any{
				"icon":        map[string]any{"type": "string"},
				"title":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string", "minLength": 1},
			},
		},
		Seed: []map[string]any{
			{"icon": "globe", "title": "Remote-first", "description": "Work from anywhere in ±4h of CET."},
			{"icon": "trending-up", "title": "Equity", "description": "Every employee holds options."},
		},
	},
	{
		Code:        ResourceRoles,
		Name:        "Career Roles",
		Description: "Open roles, ids are generated slugs",
		Path:        "careers/roles-config",
		Kind:        KindCollection,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"title", "description"},
			"properties": map[string]any{
				"roleId":      map[string]any{"type": "string"},
				"title":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string", "minLength": 1},
				"location":    map[string]any{"type": "string"},
				"department":  map[string]any{"type": "string"},
			},
		},
		Seed: []map[string]any{
			{"roleId": "senior-backend-engineer", "title": "Senior Backend Engineer", "description": "Own the sourcing-graph services.", "location": "Remote (EU)", "department": "Engineering"},
			{"roleId": "category-data-analyst", "title": "Category Data Analyst", "description": "Model supplier categories and pricing curves.", "location": "Amsterdam", "department": "Data"},
		},
	},
	{
		Code:        ResourceApplications,
		Name:        "Career Applications",
		Description: "Submitted applications with embedded interview reviews",
		Path:        "careers/applications",
		Kind:        KindCollection,
		StatusField: "status",
		Statuses:    ApplicationStatuses,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name", "email", "role"},
			"properties": map[string]any{
				"name":           map[string]any{"type": "string", "minLength": 1},
				"email":          map[string]any{"type": "string", "minLength": 3},
				"phone":          map[string]any{"type": "string"},
				"linkedinUrl":    map[string]any{"type": "string"},
				"role":           map[string]any{"type": "string", "minLength": 1},
				"experience":     map[string]any{"type": "string"},
				"whyJoin":        map[string]any{"type": "string"},
				"resumeData":     map[string]any{"type": "string"},
				"resumeFileName": map[string]any{"type": "string"},
				"status":         map[string]any{"type": "string", "enum": toAnySlice(ApplicationStatuses)},
				"reviews":        map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			},
		},
	},
	{
		Code:        ResourceDemoRequests,
		Name:        "Demo Requests",
		Description: "Inbound customer leads",
		Path:        "demo-requests",
		Kind:        KindCollection,
		StatusField: "status",
		Statuses:    DemoRequestStatuses,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name", "company"},
			"properties": map[string]any{
				"name":               map[string]any{"type": "string", "minLength": 1},
				"email":              map[string]any{"type": "string"},
				"company":            map[string]any{"type": "string", "minLength": 1},
				"interest":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"factoryLocations":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"headOfficeLocation": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"status":             map[string]any{"type": "string", "enum": toAnySlice(DemoRequestStatuses)},
			},
		},
	},
	{
		Code:        ResourceSuppliers,
		Name:        "Supplier Requests",
		Description: "Inbound supplier onboarding leads",
		Path:        "supplier-requests",
		Kind:        KindCollection,
		StatusField: "status",
		Statuses:    SupplierStatuses,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"companyName", "contactName"},
			"properties": map[string]any{
				"companyName":       map[string]any{"type": "string", "minLength": 1},
				"contactName":       map[string]any{"type": "string", "minLength": 1},
				"email":             map[string]any{"type": "string"},
				"productCategories": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"regionsServed":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"status":            map[string]any{"type": "string", "enum": toAnySlice(SupplierStatuses)},
			},
		},
	},
	{
		Code:        ResourceRiskCats,
		Name:        "Risk Categories",
		Description: "Trigger keyword configuration for news risk classification",
		Path:        "risk-categories/config",
		Kind:        KindCollection,
		Orderable:   true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"category", "label"},
			"properties": map[string]any{
				"category":       map[string]any{"type": "string", "minLength": 1},
				"label":          map[string]any{"type": "string", "minLength": 1},
				"strongTriggers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"mediumTriggers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"order":          map[string]any{"type": "integer", "minimum": 0},
			},
		},
		Seed: []map[string]any{
			{"category": "logistics", "label": "Logistics Disruption", "strongTriggers": []any{"port closure", "strike"}, "mediumTriggers": []any{"congestion", "delay"}},
			{"category": "financial", "label": "Financial Distress", "strongTriggers": []any{"bankruptcy", "insolvency"}, "mediumTriggers": []any{"layoffs", "downgrade"}},
			{"category": "compliance", "label": "Compliance", "strongTriggers": []any{"sanction", "export ban"}, "mediumTriggers": []any{"investigation"}},
		},
	},
	{
		Code:        ResourceNewsQueries,
		Name:        "News Queries",
		Description: "Saved news search queries, toggleable per query",
		Path:        "news/queries",
		Kind:        KindCollection,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"query"},
			"properties": map[string]any{
				"query":    map[string]any{"type": "string", "minLength": 1},
				"label":    map[string]any{"type": "string"},
				"isActive": map[string]any{"type": "boolean"},
			},
		},
	},
	{
		Code:        ResourceSiteSettings,
		Name:        "Site Settings",
		Description: "Global site switches and social links",
		Path:        "site-settings",
		Kind:        KindSingleton,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"showClientNames":       map[string]any{"type": "boolean"},
				"clientSectionTitle":    map[string]any{"type": "string"},
				"clientSectionSubtitle": map[string]any{"type": "string"},
				"targetAudience":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"twitterUrl":            map[string]any{"type": "string"},
				"linkedinUrl":           map[string]any{"type": "string"},
			},
		},
		Seed: []map[string]any{
			{
				"showClientNames":    true,
				"clientSectionTitle": "Trusted by industrial buyers",
				"targetAudience":     []any{"procurement", "supply-chain"},
			},
		},
	},
}

func contentBlockSchema(titleField string) map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{titleField, "description"},
		"properties": map[string]any{
			titleField:    map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"icon":        map[string]any{"type": "string"},
			"order":       map[string]any{"type": "integer", "minimum": 0},
		},
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Catalog returns copies of the built-in resource definitions.
func Catalog() []ResourceDefinition {
	out := make([]ResourceDefinition, len(catalogDefinitions))
	copy(out, catalogDefinitions)
	return out
}
