package model

import (
	"math"
	"time"
)

// Unavailable is the placeholder used for missing text fields
const Unavailable = "unavailable"

// Upstream date formats
const (
	UpstreamDateLayout = "20060102"
	PublishDateLayout  = "2006-01-02"
)

// SecondsPerMinute is used to derive DurationMinutes
const SecondsPerMinute = 60

// VideoRecord is one row of the batch report
type VideoRecord struct {
	Title           string  `json:"title"`
	SourceURL       string  `json:"url"`
	DurationSeconds int64   `json:"duration_seconds"`
	DurationMinutes float64 `json:"duration_minutes"`
	Channel         string  `json:"channel"`
	ViewCount       int64   `json:"view_count"`
	PublishDate     string  `json:"publish_date"`
	Description     string  `json:"description"`

	// Set only by the playlist workflow
	PlaylistTitle string `json:"playlist,omitempty"`
	PlaylistIndex int    `json:"playlist_index,omitempty"`
}

// UnavailableRecord returns the all-sentinel record for url
func UnavailableRecord(url string) VideoRecord {
	return VideoRecord{
		Title:           Unavailable,
		SourceURL:       url,
		DurationSeconds: 0,
		DurationMinutes: 0,
		Channel:         Unavailable,
		ViewCount:       0,
		PublishDate:     Unavailable,
		Description:     Unavailable,
	}
}

// NewVideoRecord builds a record from upstream values, applying defaults
// and clamping negative numbers to zero.
func NewVideoRecord(url, title string, durationSeconds int64, channel string, viewCount int64, publishDate, description string) VideoRecord {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	if viewCount < 0 {
		viewCount = 0
	}
	return VideoRecord{
		Title:           orUnavailable(title),
		SourceURL:       url,
		DurationSeconds: durationSeconds,
		DurationMinutes: DurationMinutes(durationSeconds),
		Channel:         orUnavailable(channel),
		ViewCount:       viewCount,
		PublishDate:     orUnavailable(publishDate),
		Description:     orUnavailable(description),
	}
}

// WithPlaylist returns a copy of the record carrying playlist position
func (r VideoRecord) WithPlaylist(title string, index int) VideoRecord {
	r.PlaylistTitle = title
	r.PlaylistIndex = index
	return r
}

// HasPlaylist reports whether playlist fields were attached
func (r VideoRecord) HasPlaylist() bool {
	return r.PlaylistIndex > 0
}

// DurationMinutes converts seconds to minutes rounded to two decimals.
// Zero or negative input yields 0.
func DurationMinutes(seconds int64) float64 {
	if seconds <= 0 {
		return 0
	}
	return math.Round(float64(seconds)/SecondsPerMinute*100) / 100
}

// FormatPublishDate converts an upstream YYYYMMDD date to YYYY-MM-DD.
// Empty input yields Unavailable; malformed input yields Unavailable and ok=false.
func FormatPublishDate(upstream string) (date string, ok bool) {
	if upstream == "" {
		return Unavailable, true
	}
	if len(upstream) != len(UpstreamDateLayout) {
		return Unavailable, false
	}
	t, err := time.Parse(UpstreamDateLayout, upstream)
	if err != nil {
		return Unavailable, false
	}
	return t.Format(PublishDateLayout), true
}

func orUnavailable(s string) string {
	if s == "" {
		return Unavailable
	}
	return s
}
