package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ytget/yt-catalog/internal/model"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Engine response types
const (
	InfoTypePlaylist = "playlist"
)

// ErrNotPlaylist is returned when a URL resolves to something other than a playlist
var ErrNotPlaylist = errors.New("url does not resolve to a playlist")

// MediaInfo is the subset of the engine's info JSON this app consumes.
// Numeric fields are pointers because the engine omits or nulls them freely.
type MediaInfo struct {
	ID          string       `json:"id"`
	Type        string       `json:"_type"`
	Title       string       `json:"title"`
	Duration    *float64     `json:"duration"`
	Uploader    string       `json:"uploader"`
	Channel     string       `json:"channel"`
	ViewCount   *float64     `json:"view_count"`
	UploadDate  string       `json:"upload_date"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	WebpageURL  string       `json:"webpage_url"`
	Entries     []*MediaInfo `json:"entries"`
}

// ParseMediaInfo decodes the first JSON document in output
func ParseMediaInfo(output []byte) (*MediaInfo, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return nil, errors.New("empty engine output")
	}

	var info MediaInfo
	if err := json.NewDecoder(bytes.NewReader(trimmed)).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode engine output: %w", err)
	}
	return &info, nil
}

// DurationSeconds returns the duration rounded to whole seconds, 0 if absent
func (m *MediaInfo) DurationSeconds() int64 {
	return roundNonNegative(m.Duration)
}

// Views returns the view count, 0 if absent
func (m *MediaInfo) Views() int64 {
	return roundNonNegative(m.ViewCount)
}

// ChannelName prefers the uploader, falling back to the channel name
func (m *MediaInfo) ChannelName() string {
	if m.Uploader != "" {
		return m.Uploader
	}
	return m.Channel
}

// IsPlaylist reports whether the info describes a playlist
func (m *MediaInfo) IsPlaylist() bool {
	return m.Type == InfoTypePlaylist || m.Entries != nil
}

// EntryURL returns the best member URL for a playlist entry, or "" if none
func (m *MediaInfo) EntryURL() string {
	switch {
	case strings.HasPrefix(m.URL, "http"):
		return m.URL
	case m.WebpageURL != "":
		return m.WebpageURL
	case m.ID != "":
		return fmt.Sprintf(YouTubeVideoURLTemplate, m.ID)
	}
	return ""
}

// ToPlaylist converts flat playlist info into the domain playlist.
// Entries without a resolvable URL are returned in skipped.
func (m *MediaInfo) ToPlaylist(url string) (playlist *model.Playlist, skipped int, err error) {
	if !m.IsPlaylist() {
		return nil, 0, ErrNotPlaylist
	}

	playlist = model.NewPlaylist(url)
	playlist.ID = m.ID
	playlist.Title = m.Title
	for _, entry := range m.Entries {
		if entry == nil {
			skipped++
			continue
		}
		entryURL := entry.EntryURL()
		if entryURL == "" {
			skipped++
			continue
		}
		playlist.AddEntry(entryURL, entry.Title)
	}
	playlist.Skipped = skipped
	return playlist, skipped, nil
}

func roundNonNegative(v *float64) int64 {
	if v == nil || math.IsNaN(*v) || *v <= 0 {
		return 0
	}
	return int64(math.Round(*v))
}
