// Package badgestub provides badge count backends for quick actions.
package badgestub

import "context"

// None reports no badge for any source.
type None struct{}

// NewNone creates a badge provider that never shows a badge.
func NewNone() *None { return &None{} }

// BadgeCount always returns nil, rendering the badge as absent.
func (n *None) BadgeCount(ctx context.Context, source string) (*int, error) {
	return nil, nil
}

// Fixed serves badge counts from a fixed table, keyed by badge source.
// Sources absent from the table render without a badge.
type Fixed struct {
	counts map[string]int
}

// NewFixed creates a badge provider backed by the given counts.
func NewFixed(counts map[string]int) *Fixed {
	return &Fixed{counts: counts}
}

// BadgeCount returns the configured count for the source, or nil.
func (f *Fixed) BadgeCount(ctx context.Context, source string) (*int, error) {
	count, ok := f.counts[source]
	if !ok {
		return nil, nil
	}
	return &count, nil
}
