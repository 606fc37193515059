// Package generation contains the core of the website builder: prompt
// construction from a free-text description and a style keyword, a model
// fallback resolver that walks an ordered list of candidate Gemini models,
// and a fragment extractor that splits the raw model output into HTML and
// CSS. It abstracts the LLM integration behind the Generator and ModelCaller
// interfaces so the HTTP layer and tests never couple to a specific provider
// SDK.
package generation
