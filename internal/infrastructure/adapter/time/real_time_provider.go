package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
)

// RealTimeProvider implements core.TimeProvider on the system clock.
// Timestamps are returned in UTC so stored join dates do not depend on the host zone.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout bounds ctx by timeout; a non-positive timeout leaves ctx unbounded
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}
