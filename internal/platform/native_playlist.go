package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	ytget "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-catalog/internal/model"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	PlaylistSuffix      = " Playlist"
	MinPrefixLength     = 10
)

// NativePlaylistSource lists playlists with the pure-Go ytget/ytdlp library,
// without spawning yt-dlp. The library exposes no playlist title, so one is
// derived from member titles.
type NativePlaylistSource struct {
	timeout time.Duration
}

// NewNativePlaylistSource creates a source with no timeout
func NewNativePlaylistSource() *NativePlaylistSource {
	return &NativePlaylistSource{}
}

// SetTimeout bounds each listing call; zero disables the bound
func (n *NativePlaylistSource) SetTimeout(timeout time.Duration) {
	n.timeout = timeout
}

// ListPlaylist implements PlaylistSource
func (n *NativePlaylistSource) ListPlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL %s: %w", url, ErrNotPlaylist)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	items, err := ytget.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(url)
	playlist.ID = playlistID
	titles := make([]string, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			playlist.Skipped++
			continue
		}
		playlist.AddEntry(fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID), it.Title)
		titles = append(titles, it.Title)
	}
	playlist.Title = derivePlaylistTitle(titles)

	return playlist, nil
}

// ExtractPlaylistID returns the value of the list= parameter, or ""
func ExtractPlaylistID(url string) string {
	parts := strings.SplitN(url, PlaylistParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	return id
}

// derivePlaylistTitle names a playlist after the common prefix of its first
// two titles, or after the first title
func derivePlaylistTitle(titles []string) string {
	if len(titles) == 0 {
		return DefaultPlaylistName
	}
	if len(titles) > 1 {
		prefix := findCommonPrefix(titles[0], titles[1])
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return titles[0] + PlaylistSuffix
}

func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
