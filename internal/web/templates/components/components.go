// Package components holds the building blocks the screens share.
package components

// FilterLink is one entry of a filter bar
type FilterLink struct {
	Href   string
	Value  string
	Label  string
	Active bool
}

// Option is one radio choice
type Option struct {
	Value   string
	Label   string
	Checked bool
}

// StyleOption is a style preference that toggles on and off
type StyleOption struct {
	Name     string
	Selected bool
}
