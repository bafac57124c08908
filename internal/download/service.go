package download

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/metrics"
	"github.com/ytget/yt-catalog/internal/model"
	"github.com/ytget/yt-catalog/internal/platform"
	"github.com/ytget/yt-catalog/internal/report"
)

// Workflow names used in logs and metrics
const (
	WorkflowSingle   = "single"
	WorkflowPlaylist = "playlist"
)

// Deps wires the service to its collaborators
type Deps struct {
	Extractor        platform.Extractor
	Playlists        platform.PlaylistSource
	Downloader       platform.MediaDownloader
	Reports          ReportWriter
	Metrics          *metrics.Recorder // optional
	Logger           zerolog.Logger
	Format           string
	FilenameTemplate string
}

// SingleResult is the outcome of a successful single-video run
type SingleResult struct {
	RunID  string
	Record model.VideoRecord
	Report *report.Paths
}

// PlaylistResult is the outcome of a playlist run. Records holds one row per
// playlist entry regardless of download outcome; Statuses is parallel to it.
type PlaylistResult struct {
	RunID    string
	Playlist *model.Playlist
	Records  []model.VideoRecord
	Statuses []model.ItemStatus
	Failed   []string
	Report   *report.Paths
}

// Total returns the number of processed items
func (r *PlaylistResult) Total() int {
	return len(r.Records)
}

// Succeeded returns the number of items whose media downloaded
func (r *PlaylistResult) Succeeded() int {
	return r.Total() - len(r.Failed)
}

// Service runs the single-video and playlist workflows sequentially
type Service struct {
	resolver   *Resolver
	fetcher    *Fetcher
	enumerator *Enumerator
	reports    ReportWriter
	metrics    *metrics.Recorder
	logger     zerolog.Logger
}

var _ Runner = (*Service)(nil)

// NewService creates a new batch service
func NewService(deps Deps) *Service {
	logger := deps.Logger.With().Str("component", "download").Logger()
	return &Service{
		resolver:   NewResolver(deps.Extractor, deps.Metrics, logger),
		fetcher:    NewFetcher(deps.Downloader, deps.Format, deps.FilenameTemplate, logger),
		enumerator: NewEnumerator(deps.Playlists, logger),
		reports:    deps.Reports,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// RunSingle downloads one video and writes a one-row report.
// If the download fails, ErrFetchFailed is returned and no report is written,
// even though metadata was resolved.
func (s *Service) RunSingle(ctx context.Context, url, folder string) (result *SingleResult, err error) {
	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Str("workflow", WorkflowSingle).Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	defer func() { s.metrics.RunFinished(WorkflowSingle, err, time.Since(start)) }()

	if err := s.provision(folder, logger); err != nil {
		return nil, err
	}

	logger.Info().Str("url", url).Msg("processing video")
	record := s.resolver.Resolve(ctx, url, false)

	if !s.fetcher.Fetch(ctx, url, folder) {
		s.metrics.ItemProcessed(WorkflowSingle, model.ItemStatusError)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Error().Str("url", url).Msg("failed to download video")
		return nil, ErrFetchFailed
	}
	s.metrics.ItemProcessed(WorkflowSingle, model.ItemStatusCompleted)
	logger.Info().Str("url", url).Msg("video downloaded")

	paths, err := s.reports.Write([]model.VideoRecord{record}, report.PrefixVideo)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save video info")
		return nil, err
	}

	return &SingleResult{RunID: runID, Record: record, Report: paths}, nil
}

// RunPlaylist downloads every playlist member in order. One item's failure
// never aborts the batch; failed URLs are collected in the result.
func (s *Service) RunPlaylist(ctx context.Context, playlistURL, folder string) (result *PlaylistResult, err error) {
	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Str("workflow", WorkflowPlaylist).Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	defer func() { s.metrics.RunFinished(WorkflowPlaylist, err, time.Since(start)) }()

	if err := s.provision(folder, logger); err != nil {
		return nil, err
	}

	playlist, err := s.enumerator.Enumerate(ctx, playlistURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn().Msg("playlist run interrupted during enumeration")
			return nil, ctxErr
		}
		logger.Error().Err(err).Msg("failed to get playlist info")
		return nil, err
	}

	result = &PlaylistResult{
		RunID:    runID,
		Playlist: playlist,
		Records:  make([]model.VideoRecord, 0, playlist.Len()),
		Statuses: make([]model.ItemStatus, 0, playlist.Len()),
	}

	total := playlist.Len()
	for _, entry := range playlist.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn().Int("processed", result.Total()).Int("total", total).Msg("playlist run interrupted")
			return nil, ctxErr
		}

		logger.Info().Int("index", entry.Index).Int("total", total).Msg("processing video")
		status := s.processEntry(ctx, playlist.Title, entry, folder, result)
		result.Statuses = append(result.Statuses, status)
		if !status.IsSuccess() {
			result.Failed = append(result.Failed, entry.URL)
		}
		s.metrics.ItemProcessed(WorkflowPlaylist, status)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Warn().Int("processed", result.Total()).Int("total", total).Msg("playlist run interrupted")
		return nil, ctxErr
	}

	if len(result.Records) == 0 {
		logger.Warn().Str("playlist", playlist.Title).Int("skipped", playlist.Skipped).Msg("playlist has no videos, nothing to save")
		return result, nil
	}

	paths, err := s.reports.Write(result.Records, report.PrefixPlaylist)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save playlist info")
		return nil, err
	}
	result.Report = paths

	s.logSummary(logger, total, playlist.Skipped, result.Failed)
	return result, nil
}

// processEntry resolves and fetches one playlist member. The record is
// appended to result before the fetch so metadata survives download
// failures; a panic anywhere in the item is recovered as a failure.
func (s *Service) processEntry(ctx context.Context, playlistTitle string, entry model.PlaylistEntry, folder string, result *PlaylistResult) (status model.ItemStatus) {
	appended := false
	defer func() {
		if p := recover(); p != nil {
			logger := loggerFrom(ctx, s.logger)
			logger.Error().
				Err(recoveredError(p)).
				Int("index", entry.Index).
				Str("url", entry.URL).
				Msg("error processing video")
			if !appended {
				result.Records = append(result.Records, model.UnavailableRecord(entry.URL).WithPlaylist(playlistTitle, entry.Index))
			}
			status = model.ItemStatusError
		}
	}()

	record := s.resolver.Resolve(ctx, entry.URL, true).WithPlaylist(playlistTitle, entry.Index)
	result.Records = append(result.Records, record)
	appended = true

	if !s.fetcher.Fetch(ctx, entry.URL, folder) {
		return model.ItemStatusError
	}
	return model.ItemStatusCompleted
}

func (s *Service) provision(folder string, logger zerolog.Logger) error {
	created, err := platform.EnsureFolder(folder)
	if err != nil {
		logger.Error().Err(err).Str("folder", folder).Msg("failed to create folder")
		return err
	}
	if created {
		logger.Info().Str("folder", folder).Msg("folder created")
	}
	return nil
}

func (s *Service) logSummary(logger zerolog.Logger, total, skipped int, failed []string) {
	logger.Info().
		Int("total", total).
		Int("skipped", skipped).
		Int("succeeded", total-len(failed)).
		Int("failed", len(failed)).
		Msg("playlist summary")

	if len(failed) > 0 {
		logger.Warn().Msg("videos that failed to download:")
		for _, url := range failed {
			logger.Warn().Str("url", url).Msg("failed download")
		}
	}
}
