package download

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-catalog/internal/model"
)

type panickingSource struct{}

func (panickingSource) ListPlaylist(context.Context, string) (*model.Playlist, error) {
	panic("listing exploded")
}

func TestEnumerator_Enumerate(t *testing.T) {
	const listURL = "https://www.youtube.com/playlist?list=PLtest"
	sourceErr := errors.New("ERROR: The playlist does not exist")

	t.Run("ok", func(t *testing.T) {
		engine := newFakeEngine()
		engine.playlist = playlistOf("Mix", url1, url2)

		playlist, err := NewEnumerator(engine, zerolog.Nop()).Enumerate(context.Background(), listURL)
		require.NoError(t, err)
		assert.Equal(t, []string{url1, url2}, playlist.URLs())
		assert.Equal(t, 1, engine.playlistCalls)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		engine := newFakeEngine()
		engine.playlistErr = sourceErr

		playlist, err := NewEnumerator(engine, zerolog.Nop()).Enumerate(context.Background(), listURL)
		assert.Nil(t, playlist)
		var resolutionErr *PlaylistResolutionError
		require.ErrorAs(t, err, &resolutionErr)
		assert.ErrorIs(t, err, sourceErr)
		assert.Contains(t, err.Error(), listURL)
	})

	t.Run("nil playlist", func(t *testing.T) {
		playlist, err := NewEnumerator(newFakeEngine(), zerolog.Nop()).Enumerate(context.Background(), listURL)
		assert.Nil(t, playlist)
		var resolutionErr *PlaylistResolutionError
		assert.ErrorAs(t, err, &resolutionErr)
	})

	t.Run("panic", func(t *testing.T) {
		playlist, err := NewEnumerator(panickingSource{}, zerolog.Nop()).Enumerate(context.Background(), listURL)
		assert.Nil(t, playlist)
		var resolutionErr *PlaylistResolutionError
		require.ErrorAs(t, err, &resolutionErr)
		assert.Contains(t, err.Error(), "listing exploded")
	})
}
