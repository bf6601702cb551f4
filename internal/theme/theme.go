// Package theme holds the two-valued presentation preference, resolves it from
// a persisted store and reflects every change onto the document root.
package theme

import "sync"

// Theme is the presentation preference.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default applies when no valid preference is stored.
const Default = Dark

// StorageKey is the persisted key holding the preference.
const StorageKey = "theme"

// Attribute is the document root attribute that carries the theme.
const Attribute = "data-theme"

// Parse accepts exactly "dark" or "light".
func Parse(value string) (Theme, bool) {
	switch Theme(value) {
	case Dark, Light:
		return Theme(value), true
	default:
		return "", false
	}
}

// Toggled returns the opposite theme. Anything that is not Light toggles to
// Light, so only the two valid values are reachable.
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}

// Applier reflects the current theme onto a host surface.
type Applier interface {
	ApplyTheme(Theme)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(Theme)

// ApplyTheme implements Applier.
func (f ApplierFunc) ApplyTheme(t Theme) { f(t) }

// Document models the attributes of a document root element.
type Document struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewDocument returns a root element with no attributes.
func NewDocument() *Document {
	return &Document{attrs: make(map[string]string)}
}

// SetAttribute sets name to value.
func (d *Document) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
}

// Attribute returns the value of name, or "" when unset.
func (d *Document) Attribute(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attrs[name]
}

// ApplyTheme implements Applier by setting the data-theme attribute.
func (d *Document) ApplyTheme(t Theme) {
	d.SetAttribute(Attribute, t.String())
}
