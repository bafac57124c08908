package download

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/platform"
)

// Fetcher downloads one media item. It never fails: errors are logged and
// reported as false.
type Fetcher struct {
	downloader       platform.MediaDownloader
	format           string
	filenameTemplate string
	logger           zerolog.Logger
}

// NewFetcher creates a media fetcher. Empty format and template fall back
// to the engine defaults.
func NewFetcher(downloader platform.MediaDownloader, format, filenameTemplate string, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		downloader:       downloader,
		format:           format,
		filenameTemplate: filenameTemplate,
		logger:           logger,
	}
}

// Fetch downloads url into folder and reports success
func (f *Fetcher) Fetch(ctx context.Context, url, folder string) (ok bool) {
	logger := loggerFrom(ctx, f.logger).With().Str("stage", "fetch").Str("url", url).Logger()

	defer func() {
		if p := recover(); p != nil {
			logger.Error().Err(recoveredError(p)).Msg("error while downloading")
			ok = false
		}
	}()

	req := platform.DownloadRequest{
		URL:              url,
		Folder:           folder,
		Format:           f.format,
		FilenameTemplate: f.filenameTemplate,
	}
	if err := f.downloader.Download(ctx, req, NewLogObserver(logger)); err != nil {
		logger.Error().Err(err).Msg("error while downloading")
		return false
	}
	return true
}
