package platform

import (
	"context"

	"github.com/ytget/yt-catalog/internal/model"
)

// Extractor resolves a URL to engine metadata without downloading.
// flat requests lightweight extraction (playlist members are not expanded).
type Extractor interface {
	Extract(ctx context.Context, url string, flat bool) (*MediaInfo, error)
}

// PlaylistSource resolves a playlist URL to its ordered membership.
type PlaylistSource interface {
	ListPlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// MediaDownloader retrieves media to disk.
type MediaDownloader interface {
	Download(ctx context.Context, req DownloadRequest, observer ProgressObserver) error
}

// ProgressObserver receives download progress notifications.
type ProgressObserver interface {
	OnProgress(percent string)
	OnComplete(filename string)
}

// DownloadRequest describes one media download
type DownloadRequest struct {
	URL              string
	Folder           string
	Format           string // engine format selector, e.g. "best"
	FilenameTemplate string // e.g. "%(title)s.%(ext)s"
}
