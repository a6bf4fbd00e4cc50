// Package geo abstracts geolocation acquisition. The tracker treats
// position as an external service: it asks once, and a failure only
// disables map features.
package geo

import (
	"context"
	"errors"

	"github.com/meltforce/waytrack/internal/models"
)

// ErrUnavailable means the position could not be determined. Map-dependent
// features stay disabled; list and storage features keep working.
var ErrUnavailable = errors.New("position unavailable")

// Provider resolves the current device position. Implementations may block
// until the context is done.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.Position, error)
}

// Static always reports a fixed position, such as the configured home
// location.
type Static struct {
	Pos models.Position
}

func (s Static) CurrentPosition(context.Context) (models.Position, error) {
	return s.Pos, nil
}

// Func adapts a plain function to a Provider.
type Func func(ctx context.Context) (models.Position, error)

func (f Func) CurrentPosition(ctx context.Context) (models.Position, error) {
	return f(ctx)
}

// Unavailable always fails, for setups with no position source at all.
type Unavailable struct{}

func (Unavailable) CurrentPosition(context.Context) (models.Position, error) {
	return models.Position{}, ErrUnavailable
}
