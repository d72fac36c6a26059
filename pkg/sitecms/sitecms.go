package sitecms

import (
	core "github.com/onebuyai/go-sitecms/components/content"
)

// Service exposes the underlying components/content.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Record re-export for callers that only need the document shape.
type Record = core.Record

// ResourceDefinition re-export for manifest and registry consumers.
type ResourceDefinition = core.ResourceDefinition

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewRegistry proxies to the default resource catalog registry.
func NewRegistry() *core.Registry {
	return core.NewRegistry()
}
