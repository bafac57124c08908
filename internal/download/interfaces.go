package download

import (
	"context"

	"github.com/ytget/yt-catalog/internal/model"
	"github.com/ytget/yt-catalog/internal/report"
)

// Runner defines the workflows exposed to the entry point.
type Runner interface {
	RunSingle(ctx context.Context, url, folder string) (*SingleResult, error)
	RunPlaylist(ctx context.Context, playlistURL, folder string) (*PlaylistResult, error)
}

// ReportWriter persists the accumulated rows of one batch.
type ReportWriter interface {
	Write(rows []model.VideoRecord, prefix string) (*report.Paths, error)
}
