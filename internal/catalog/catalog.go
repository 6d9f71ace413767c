// Package catalog holds the industry page templates the builder ships.
// The templates themselves are declarative content; the only behavior
// here is boundary lookups the intent pipeline needs: which form anchors
// a page renders, and which intents its controls emit.
package catalog

import "github.com/siteforge/siteforge/internal/intent"

// Industry keys templates by business vertical.
type Industry string

const (
	Plumbing Industry = "plumbing"
	Bakery   Industry = "bakery"
	Legal    Industry = "legal"
	Fitness  Industry = "fitness"
)

// Control is an interactive element rendered inside a section; pressing
// it raises the named intent.
type Control struct {
	Label  string
	Intent intent.Intent
}

// Section is one block of a page template. FormIntent names the intent
// whose form this section renders, if any; FormAnchor is the in-page
// anchor the scroll collaborator targets.
type Section struct {
	ID         string
	Title      string
	Category   string
	Body       string
	FormAnchor string
	FormIntent intent.Intent
	Controls   []Control
}

// Template is a complete industry page.
type Template struct {
	Industry Industry
	Name     string
	Tagline  string
	Sections []Section
}

// ForIndustry returns the template for the given industry.
func ForIndustry(key Industry) (Template, bool) {
	for _, t := range templates {
		if t.Industry == key {
			return t, true
		}
	}
	return Template{}, false
}

// Industries lists the shipped verticals in catalog order.
func Industries() []Industry {
	out := make([]Industry, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Industry)
	}
	return out
}

// FormAnchorFor returns the anchor of the section rendering a form for
// the intent, if the template has one.
func (t Template) FormAnchorFor(in intent.Intent) (string, bool) {
	for _, s := range t.Sections {
		if s.FormIntent == in && s.FormAnchor != "" {
			return s.FormAnchor, true
		}
	}
	return "", false
}

// HasFormFor reports whether the page renders a form for the intent;
// used to populate ExecutionOptions.HasFormInView.
func (t Template) HasFormFor(in intent.Intent) bool {
	_, ok := t.FormAnchorFor(in)
	return ok
}

// CategoryFor returns the category of the first section carrying a
// control for the intent, as the page-category hint for resolution.
func (t Template) CategoryFor(in intent.Intent) string {
	for _, s := range t.Sections {
		for _, c := range s.Controls {
			if c.Intent == in {
				return s.Category
			}
		}
		if s.FormIntent == in {
			return s.Category
		}
	}
	return ""
}

// Controls flattens every control on the page in render order.
func (t Template) Controls() []Control {
	var out []Control
	for _, s := range t.Sections {
		out = append(out, s.Controls...)
	}
	return out
}
