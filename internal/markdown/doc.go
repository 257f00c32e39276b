// Package markdown parses article front matter and renders Markdown bodies
// into HTML with goldmark. A GoldmarkRenderer is configured once per
// collection build; plugin registration and rule toggles happen in
// NewRenderer and never touch package level state.
package markdown
