package generation

import "fmt"

// DefaultStyle is used when a request does not name a style keyword.
const DefaultStyle = "modern"

// systemInstruction asks the model for the exact two-section output format
// the fragment extractor understands. It is a static asset of the design:
// nothing user-derived is ever interpolated into it.
const systemInstruction = `You are an expert web developer specializing in modern, beautiful web design. Generate complete, production-ready HTML and CSS code.

IMPORTANT: Format your response EXACTLY like this (no other text):
HTML:
` + "```html" + `
<complete html code here>
` + "```" + `

CSS:
` + "```css" + `
<complete css code here>
` + "```" + `

CRITICAL Requirements:

HTML:
- Use semantic HTML5 tags (header, nav, main, section, article, footer)
- DO NOT use external image URLs - use placeholder divs with background colors/gradients instead
- Use emoji icons (✨🎨📱💼🌟) instead of icon fonts
- Include proper structure and content hierarchy
- Use divs with classes for visual elements instead of <img> tags

CSS:
- Start with a CSS reset (*{margin:0; padding:0; box-sizing:border-box;})
- Use CSS variables for colors at :root level
- Create beautiful gradient backgrounds (linear-gradient, radial-gradient)
- Use flexbox/grid for layouts
- Add generous padding and margins (at least 2rem-4rem for sections)
- Use modern font stack: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif
- Font sizes: headings 2rem-4rem, body 1.1rem minimum
- Line height: 1.6 minimum for readability
- Add hover effects with transform: translateY(-5px) and box-shadow changes
- Use border-radius: 12px-20px for cards/buttons
- Add box-shadow for depth: 0 10px 30px rgba(0,0,0,0.1)
- Include smooth transitions: transition: all 0.3s ease
- Make fully responsive with @media queries for mobile (max-width: 768px)
- Use complementary color schemes (not just black and white)
- Add background patterns or gradients to sections
- Style links with colors and hover states

The design should be visually striking, colorful, and immediately impressive.`

// styleDescriptors maps the closed set of style keywords to design guidance
// appended to the user prompt. Unknown keywords map to the empty string.
var styleDescriptors = map[string]string{
	"modern":       "with bold vibrant colors (#667eea to #764ba2 gradients), large typography, card-based layouts, lots of whitespace, glassmorphism effects",
	"minimal":      "with elegant black and white palette, ultra-clean layout, generous negative space, sophisticated typography, accent color (#0066ff)",
	"professional": "with corporate blue gradients (#4facfe to #00f2fe), structured layout, polished cards, business-appropriate design",
	"creative":     "with bold rainbow gradients (#f093fb to #f5576c), playful animations, asymmetric layouts, artistic flair, vibrant energy",
}

// StyleDescriptor returns the design guidance string for a style keyword, or
// the empty string for keywords outside the fixed table.
func StyleDescriptor(style string) string {
	return styleDescriptors[style]
}

// Prompt is the payload sent to the model provider for one generation call.
type Prompt struct {
	SystemInstruction string
	UserPrompt        string
}

// BuildPrompt combines the free-text description, the style keyword and the
// looked-up style descriptor into the prompt payload. Pure function, no
// validation: the description is inserted verbatim.
func BuildPrompt(req SiteRequest) Prompt {
	style := req.Style
	if style == "" {
		style = DefaultStyle
	}

	userPrompt := fmt.Sprintf(
		"Create a stunning %s style website %s: %s. Make it visually impressive with rich CSS styling, beautiful colors, and modern design. NO external images - use colored divs and gradients for visual elements.",
		style, StyleDescriptor(style), req.Prompt,
	)

	return Prompt{
		SystemInstruction: systemInstruction,
		UserPrompt:        userPrompt,
	}
}
