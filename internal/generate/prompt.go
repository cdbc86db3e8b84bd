package generate

import (
	"fmt"
	"strings"
)

// Fixed conventions the generated page must follow. The template below
// references all of them; tests assert they survive interpolation.
const (
	// TailwindCDN is the only stylesheet source the page may use.
	TailwindCDN = "https://cdn.tailwindcss.com"

	// ImageBaseURL is the placeholder image service. Each image URL is
	// ImageBaseURL/{seed-word}/{width}/{height}.
	ImageBaseURL = "https://picsum.photos/seed"

	ImageWidth  = 1200
	ImageHeight = 800
)

// SectionNames lists the page sections the model must produce, in order.
var SectionNames = []string{
	"navigation bar",
	"hero",
	"features",
	"how it works",
	"pricing",
	"final call-to-action",
	"footer",
}

const promptHeader = `You are an expert web designer and frontend developer. Create a complete, modern, visually appealing landing page for the product described below.`

// BuildPrompt embeds a product idea into the fixed instruction template.
// It is pure string interpolation and has no failure modes; the caller
// must have already rejected an empty idea.
func BuildPrompt(idea string) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Product Idea: %q\n\n", idea))

	sb.WriteString("Requirements:\n")
	sb.WriteString("- Produce ONE single, self-contained HTML document.\n")
	sb.WriteString(fmt.Sprintf("- Style exclusively with Tailwind CSS loaded from the CDN (<script src=%q></script>). No other stylesheets, no <style> blocks.\n", TailwindCDN))
	sb.WriteString(fmt.Sprintf("- The page must contain these sections, in order: %s.\n", strings.Join(SectionNames, ", ")))
	sb.WriteString("- Invent all headline and body copy yourself. Tone: professional yet engaging.\n")
	sb.WriteString(fmt.Sprintf("- For every image use %s/{word}/%d/%d where {word} is a different random seed word per image.\n", ImageBaseURL, ImageWidth, ImageHeight))
	sb.WriteString("- Use inline SVG for all icons. No icon fonts, no external icon libraries.\n")

	sb.WriteString("\nOutput format: reply with nothing but one fenced code block tagged html (```html) wrapping the full document. No prose before or after the block.\n")

	return sb.String()
}
