package ports

import (
	"context"
	"io"

	"go.trai.ch/tally/internal/core/domain"
)

// AnalyticsOpener builds the analytics SDK selected by a configuration.
//
//go:generate mockgen -source=opener.go -destination=mocks/mock_opener.go -package=mocks
type AnalyticsOpener interface {
	// Open returns the SDK and a function releasing whatever it holds.
	// Console output, when the SDK writes any, goes to out.
	Open(ctx context.Context, cfg *domain.Config, out io.Writer) (Analytics, func(context.Context) error, error)
}
