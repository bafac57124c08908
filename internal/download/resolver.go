package download

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/metrics"
	"github.com/ytget/yt-catalog/internal/model"
	"github.com/ytget/yt-catalog/internal/platform"
)

// Resolver turns a URL into a report record. It never fails: any engine
// error degrades to model.UnavailableRecord.
type Resolver struct {
	extractor platform.Extractor
	metrics   *metrics.Recorder
	logger    zerolog.Logger
}

// NewResolver creates a metadata resolver
func NewResolver(extractor platform.Extractor, recorder *metrics.Recorder, logger zerolog.Logger) *Resolver {
	return &Resolver{
		extractor: extractor,
		metrics:   recorder,
		logger:    logger,
	}
}

// Resolve fetches metadata for url. flat requests lightweight extraction.
func (r *Resolver) Resolve(ctx context.Context, url string, flat bool) model.VideoRecord {
	logger := loggerFrom(ctx, r.logger).With().Str("stage", "resolve").Str("url", url).Logger()

	info, err := r.extract(ctx, url, flat)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch video info")
		r.metrics.ResolutionFailed()
		return model.UnavailableRecord(url)
	}

	publishDate, ok := model.FormatPublishDate(info.UploadDate)
	if !ok {
		logger.Warn().Str("upload_date", info.UploadDate).Msg("unparseable upload date")
	}

	return model.NewVideoRecord(
		url,
		info.Title,
		info.DurationSeconds(),
		info.ChannelName(),
		info.Views(),
		publishDate,
		info.Description,
	)
}

func (r *Resolver) extract(ctx context.Context, url string, flat bool) (info *platform.MediaInfo, err error) {
	defer func() {
		if p := recover(); p != nil {
			info, err = nil, recoveredError(p)
		}
	}()

	info, err = r.extractor.Extract(ctx, url, flat)
	if err == nil && info == nil {
		err = errors.New("engine returned no info")
	}
	return info, err
}
