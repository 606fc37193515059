// Package gemini implements the generation.ModelCaller interface using
// Google's Gemini API.
package gemini
