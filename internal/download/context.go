package download

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFrom returns the run logger stored in ctx, or fallback
func loggerFrom(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}
