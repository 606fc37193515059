// Package api implements the HTTP surface of the website builder: request
// and response DTOs, the generation handler, and the mapping from generation
// failures to HTTP status codes.
package api
