package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ytget/yt-catalog/internal/model"
)

// ReadCSV parses a report written by Writer back into records
func ReadCSV(path string) ([]model.VideoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	table, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("parse csv: missing header")
	}

	index := make(map[string]int, len(table[0]))
	for i, name := range table[0] {
		index[name] = i
	}
	for _, name := range baseColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("parse csv: missing column %q", name)
		}
	}
	_, hasPlaylist := index[ColPlaylistIndex]

	records := make([]model.VideoRecord, 0, len(table)-1)
	for line, row := range table[1:] {
		get := func(col string) string { return row[index[col]] }

		r := model.VideoRecord{
			Title:       get(ColTitle),
			SourceURL:   get(ColURL),
			Channel:     get(ColChannel),
			PublishDate: get(ColPublishDate),
			Description: get(ColDescription),
		}
		if r.DurationSeconds, err = strconv.ParseInt(get(ColDurationSeconds), 10, 64); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", line+1, ColDurationSeconds, err)
		}
		if r.DurationMinutes, err = strconv.ParseFloat(get(ColDurationMinutes), 64); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", line+1, ColDurationMinutes, err)
		}
		if r.ViewCount, err = strconv.ParseInt(get(ColViewCount), 10, 64); err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", line+1, ColViewCount, err)
		}
		if hasPlaylist {
			r.PlaylistTitle = get(ColPlaylist)
			if r.PlaylistIndex, err = strconv.Atoi(get(ColPlaylistIndex)); err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", line+1, ColPlaylistIndex, err)
			}
		}
		records = append(records, r)
	}
	return records, nil
}
