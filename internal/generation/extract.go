package generation

import "strings"

// Section markers the model is instructed to emit. The extractor treats them
// as plain text: the model is asked, not guaranteed, to follow the format,
// so every branch below degrades instead of failing.
const (
	htmlMarker = "HTML:"
	cssMarker  = "CSS:"
)

// Fragments holds the two text sections recovered from a raw model response.
type Fragments struct {
	HTML string
	CSS  string
}

// ExtractFragments heuristically splits raw model output into an HTML
// fragment and a CSS fragment.
//
// When both section markers are present the text is split at the CSS marker
// and each part is reduced to its fenced code block (language-tagged fence
// preferred, plain fence as fallback, the bare part text otherwise). Without
// both markers it falls back to searching the whole text for ```html and
// ```css blocks, and if no HTML is found at all the entire raw text becomes
// the HTML fragment so callers can still show the model's output.
//
// Extraction is purely positional; the fragments are never checked for
// syntactic validity and either may be empty.
func ExtractFragments(raw string) Fragments {
	if strings.Contains(raw, htmlMarker) && strings.Contains(raw, cssMarker) {
		parts := strings.SplitN(raw, cssMarker, 2)
		htmlSection := strings.TrimSpace(strings.ReplaceAll(parts[0], htmlMarker, ""))
		cssSection := strings.TrimSpace(parts[1])

		return Fragments{
			HTML: sectionContent(htmlSection, "html"),
			CSS:  sectionContent(cssSection, "css"),
		}
	}

	var f Fragments
	if block, ok := fencedBlock(raw, "html"); ok {
		f.HTML = block
	}
	if block, ok := fencedBlock(raw, "css"); ok {
		f.CSS = block
	}
	if f.HTML == "" {
		// Best effort: show the raw model output.
		f.HTML = raw
	}
	return f
}

// sectionContent reduces one marker-delimited section to its code content:
// the language-tagged fenced block if present, any plain fenced block
// otherwise, or the section text itself when no fence exists.
func sectionContent(section, lang string) string {
	if block, ok := fencedBlock(section, lang); ok {
		return block
	}
	if block, ok := fencedBlock(section, ""); ok {
		return block
	}
	return section
}

// fencedBlock returns the trimmed content between the first ```<lang> fence
// and the next ``` fence. An unterminated fence yields everything after the
// opening fence.
func fencedBlock(text, lang string) (string, bool) {
	marker := "```" + lang
	start := strings.Index(text, marker)
	if start < 0 {
		return "", false
	}

	rest := text[start+len(marker):]
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}
