package download

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/model"
	"github.com/ytget/yt-catalog/internal/platform"
)

// Enumerator resolves a playlist URL to its ordered member URLs
type Enumerator struct {
	source platform.PlaylistSource
	logger zerolog.Logger
}

// NewEnumerator creates a playlist enumerator
func NewEnumerator(source platform.PlaylistSource, logger zerolog.Logger) *Enumerator {
	return &Enumerator{source: source, logger: logger}
}

// Enumerate lists the playlist. Any failure is a *PlaylistResolutionError.
func (e *Enumerator) Enumerate(ctx context.Context, playlistURL string) (playlist *model.Playlist, err error) {
	defer func() {
		if p := recover(); p != nil {
			playlist, err = nil, &PlaylistResolutionError{URL: playlistURL, Err: recoveredError(p)}
		}
	}()

	playlist, err = e.source.ListPlaylist(ctx, playlistURL)
	if err == nil && playlist == nil {
		err = errors.New("no playlist info")
	}
	if err != nil {
		return nil, &PlaylistResolutionError{URL: playlistURL, Err: err}
	}

	logger := loggerFrom(ctx, e.logger)
	logger.Info().
		Str("playlist", playlist.Title).
		Int("videos", playlist.Len()).
		Msg("extracting playlist")
	return playlist, nil
}
