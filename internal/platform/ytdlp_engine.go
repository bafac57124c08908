package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/model"
)

// Default engine settings
const (
	DefaultProgressInterval = time.Second
	DefaultFormat           = "best"
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
)

// Progress statuses reported by yt-dlp
const (
	progressStatusDownloading = "downloading"
	progressStatusFinished    = "finished"
)

// YTDLP drives the yt-dlp executable. It implements Extractor,
// PlaylistSource and MediaDownloader.
type YTDLP struct {
	progressInterval time.Duration
	logger           zerolog.Logger
}

// NewYTDLP creates an engine adapter
func NewYTDLP(logger zerolog.Logger) *YTDLP {
	return &YTDLP{
		progressInterval: DefaultProgressInterval,
		logger:           logger.With().Str("component", "ytdlp").Logger(),
	}
}

// SetProgressInterval sets how often progress callbacks fire
func (y *YTDLP) SetProgressInterval(interval time.Duration) {
	if interval > 0 {
		y.progressInterval = interval
	}
}

// EnsureInstalled makes sure a yt-dlp executable is available, downloading
// one into the user cache when it isn't on PATH.
func (y *YTDLP) EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	return nil
}

// Extract runs yt-dlp in simulate mode and decodes its single JSON document
func (y *YTDLP) Extract(ctx context.Context, url string, flat bool) (*MediaInfo, error) {
	dl := ytdlp.New().
		DumpSingleJSON().
		NoWarnings()
	if flat {
		dl = dl.FlatPlaylist()
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extract %s: %w", url, err)
	}

	info, err := ParseMediaInfo([]byte(result.Stdout))
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extract %s: %w", url, err)
	}
	return info, nil
}

// ListPlaylist resolves a playlist in flat mode
func (y *YTDLP) ListPlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	info, err := y.Extract(ctx, url, true)
	if err != nil {
		return nil, err
	}

	playlist, skipped, err := info.ToPlaylist(url)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		y.logger.Warn().Str("url", url).Int("skipped", skipped).Msg("playlist entries without url skipped")
	}
	return playlist, nil
}

// Download fetches req.URL into req.Folder using the request's format and
// filename template. Existing files with the same name are overwritten.
func (y *YTDLP) Download(ctx context.Context, req DownloadRequest, observer ProgressObserver) error {
	format := req.Format
	if format == "" {
		format = DefaultFormat
	}
	template := req.FilenameTemplate
	if template == "" {
		template = DefaultFilenameTemplate
	}

	dl := ytdlp.New().
		Format(format).
		ForceOverwrites().
		NoWarnings().
		Output(filepath.Join(req.Folder, template))

	if observer != nil {
		dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
			notifyProgress(observer, &update)
		})
	}

	if _, err := dl.Run(ctx, req.URL); err != nil {
		return fmt.Errorf("yt-dlp download %s: %w", req.URL, err)
	}
	return nil
}

// notifyProgress maps a yt-dlp progress update onto the observer
func notifyProgress(observer ProgressObserver, update *ytdlp.ProgressUpdate) {
	switch string(update.Status) {
	case progressStatusDownloading:
		observer.OnProgress(FormatPercent(int64(update.DownloadedBytes), int64(update.TotalBytes)))
	case progressStatusFinished:
		filename := ""
		if update.Info != nil && update.Info.Filename != nil {
			filename = *update.Info.Filename
		}
		observer.OnComplete(filename)
	}
}

// FormatPercent renders downloaded/total as a percentage string like "42.5%".
// Unknown totals render as "0.0%".
func FormatPercent(downloaded, total int64) string {
	if total <= 0 || downloaded <= 0 {
		return "0.0%"
	}
	percent := float64(downloaded) / float64(total) * 100
	if percent > 100 {
		percent = 100
	}
	return fmt.Sprintf("%.1f%%", percent)
}
