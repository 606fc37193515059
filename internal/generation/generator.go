package generation

import "context"

// SiteRequest describes a single generation request. It is constructed per
// call and discarded after use.
type SiteRequest struct {
	// Prompt is the user's free-text description of the site to build.
	// Inserted into the user prompt verbatim, without truncation.
	Prompt string

	// Style is the style keyword. Unknown keywords are allowed and simply
	// map to an empty style descriptor.
	Style string
}

// SiteResult holds the two fragments extracted from the raw model output.
// Either fragment may be empty; validity of the markup is never checked.
type SiteResult struct {
	HTML string
	CSS  string
}

// Generator defines the interface for turning a site description into HTML
// and CSS fragments. It is the boundary between the HTTP layer and the
// LLM-backed implementation, so handlers can be tested with a stub.
type Generator interface {
	// GenerateSite builds the prompt, resolves a raw text response from the
	// model provider and extracts the fragments.
	//
	// Errors follow the fallback contract: a *ModelsUnavailableError when
	// every candidate model failed transiently, ErrEmptyResponse when no
	// response was obtained at all, or the first non-transient provider
	// error otherwise.
	GenerateSite(ctx context.Context, req SiteRequest) (*SiteResult, error)
}
