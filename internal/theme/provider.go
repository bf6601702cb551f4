package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/store"
)

// ErrProviderClosed is returned when changing the theme after Close.
var ErrProviderClosed = errors.New("theme provider is closed")

// Provider owns the current theme for one provisioning scope. It is safe for
// concurrent use.
type Provider struct {
	mu       sync.Mutex
	store    store.Store
	appliers []Applier
	logger   *logger.Logger
	current  Theme
	closed   bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger routes persistence warnings to log.
func WithLogger(log *logger.Logger) Option {
	return func(p *Provider) {
		p.logger = log
	}
}

// WithApplier registers a surface that mirrors every theme change.
func WithApplier(a Applier) Option {
	return func(p *Provider) {
		if a != nil {
			p.appliers = append(p.appliers, a)
		}
	}
}

// NewProvider resolves the initial theme from s and commits it: appliers see
// it and it is written back to s. A nil store behaves like one that cannot
// be read or written.
func NewProvider(s store.Store, opts ...Option) *Provider {
	p := &Provider{store: s}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.commit(p.load())
	return p
}

func (p *Provider) load() Theme {
	if p.store == nil {
		p.logger.Warn("no preference store available, using default theme")
		return Default
	}

	value, ok, err := p.store.Get(StorageKey)
	if err != nil {
		p.logger.WarnErr(err, "failed to load theme preference")
		return Default
	}
	if !ok {
		return Default
	}

	t, valid := Parse(value)
	if !valid {
		p.logger.WithFields(map[string]any{"value": value}).Debug("ignoring invalid stored theme")
		return Default
	}
	return t
}

// commit must be called with mu held.
func (p *Provider) commit(t Theme) {
	p.current = t

	for _, a := range p.appliers {
		a.ApplyTheme(t)
	}

	if p.store == nil {
		return
	}
	if err := p.store.Set(StorageKey, t.String()); err != nil {
		p.logger.WarnErr(err, "failed to persist theme preference")
	}
}

// Attach registers a surface created after the provider and applies the
// current theme to it. Attaching to a closed provider is a no-op.
func (p *Provider) Attach(a Applier) {
	if a == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.appliers = append(p.appliers, a)
	a.ApplyTheme(p.current)
}

// Theme returns the current theme.
func (p *Provider) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Toggle flips dark and light and returns the new theme.
func (p *Provider) Toggle() (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return p.current, ErrProviderClosed
	}
	p.commit(p.current.Toggled())
	return p.current, nil
}

// Set switches to t. Setting the current value is a no-op.
func (p *Provider) Set(t Theme) error {
	if _, ok := Parse(t.String()); !ok {
		return fmt.Errorf("invalid theme %q", t)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrProviderClosed
	}
	if t == p.current {
		return nil
	}
	p.commit(t)
	return nil
}

// Close ends the provider's lifecycle. The last theme stays readable.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.appliers = nil
}
