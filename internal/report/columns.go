package report

import (
	"strconv"

	"github.com/ytget/yt-catalog/internal/model"
)

// Column headers, in record field order
const (
	ColTitle           = "title"
	ColURL             = "url"
	ColDurationSeconds = "duration_seconds"
	ColDurationMinutes = "duration_minutes"
	ColChannel         = "channel"
	ColViewCount       = "view_count"
	ColPublishDate     = "publish_date"
	ColDescription     = "description"
	ColPlaylist        = "playlist"
	ColPlaylistIndex   = "playlist_index"
)

var baseColumns = []string{
	ColTitle, ColURL, ColDurationSeconds, ColDurationMinutes, ColChannel,
	ColViewCount, ColPublishDate, ColDescription,
}

var playlistColumns = []string{ColPlaylist, ColPlaylistIndex}

// Columns returns the header for rows. Playlist columns are present only
// when every row carries playlist fields.
func Columns(rows []model.VideoRecord) []string {
	cols := append([]string(nil), baseColumns...)
	if includePlaylist(rows) {
		cols = append(cols, playlistColumns...)
	}
	return cols
}

func includePlaylist(rows []model.VideoRecord) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if !r.HasPlaylist() {
			return false
		}
	}
	return true
}

// cells returns the typed values of r for spreadsheet cells
func cells(r model.VideoRecord, withPlaylist bool) []any {
	values := []any{
		r.Title,
		r.SourceURL,
		r.DurationSeconds,
		r.DurationMinutes,
		r.Channel,
		r.ViewCount,
		r.PublishDate,
		r.Description,
	}
	if withPlaylist {
		values = append(values, r.PlaylistTitle, r.PlaylistIndex)
	}
	return values
}

// textCells renders r as CSV fields
func textCells(r model.VideoRecord, withPlaylist bool) []string {
	fields := []string{
		r.Title,
		r.SourceURL,
		strconv.FormatInt(r.DurationSeconds, 10),
		strconv.FormatFloat(r.DurationMinutes, 'f', -1, 64),
		r.Channel,
		strconv.FormatInt(r.ViewCount, 10),
		r.PublishDate,
		r.Description,
	}
	if withPlaylist {
		fields = append(fields, r.PlaylistTitle, strconv.Itoa(r.PlaylistIndex))
	}
	return fields
}
