package theme

import (
	"context"
	"errors"
)

// ErrNoProvider reports theme access outside a provisioning scope. This is a
// wiring defect, so callers should not recover from it.
var ErrNoProvider = errors.New("useTheme must be used within a ThemeProvider")

type providerKey struct{}

// WithProvider opens a provisioning scope carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// Use returns the provider of the enclosing scope.
func Use(ctx context.Context) (*Provider, error) {
	if ctx == nil {
		return nil, ErrNoProvider
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// MustUse is Use for call sites where a missing provider is a programming
// error.
func MustUse(ctx context.Context) *Provider {
	p, err := Use(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
