// Package icons defines the icon identifiers used by the site chrome.
//
// The catalog maps stable icon identifiers to human-readable labels so that
// templates can ask for intent ("theme light", "menu") without hard-coding
// glyphs. Each identifier resolves to a Lucide glyph in lucide.go.
package icons
