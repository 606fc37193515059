package api

// Common request/response structures

// GenerateSiteRequest defines the payload for the site generation endpoint.
type GenerateSiteRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1"`
	Style  string `json:"style"`
}

// GenerateSiteResponse defines the successful response for the site
// generation endpoint: the two extracted fragments for client-side rendering.
type GenerateSiteResponse struct {
	HTML    string `json:"html"`
	CSS     string `json:"css"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RootResponse defines the liveness descriptor served at the root path.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse defines the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}
