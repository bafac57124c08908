package model

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected float64
	}{
		{-5, 0},
		{0, 0},
		{1, 0.02},
		{30, 0.5},
		{60, 1},
		{90, 1.5},
		{100, 1.67},
		{213, 3.55},
		{3599, 59.98},
		{3600, 60},
	}

	for _, test := range tests {
		result := DurationMinutes(test.seconds)
		if result != test.expected {
			t.Errorf("DurationMinutes(%d) = %v, expected %v", test.seconds, result, test.expected)
		}
	}
}

// For any non-negative duration the derived minutes equal round(d/60, 2).
func TestProperty_DurationMinutesDerivation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("minutes equal seconds/60 rounded to 2 decimals", prop.ForAll(
		func(seconds int64) bool {
			want := math.Round(float64(seconds)/60*100) / 100
			return DurationMinutes(seconds) == want
		},
		gen.Int64Range(0, 10*24*3600),
	))

	properties.Property("minutes are never negative", prop.ForAll(
		func(seconds int64) bool {
			return DurationMinutes(seconds) >= 0
		},
		gen.Int64(),
	))

	properties.Property("record minutes are derivable from record seconds", prop.ForAll(
		func(seconds, views int64) bool {
			r := NewVideoRecord("https://youtu.be/x", "t", seconds, "c", views, "", "d")
			return r.DurationSeconds >= 0 &&
				r.ViewCount >= 0 &&
				r.DurationMinutes == DurationMinutes(r.DurationSeconds)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestFormatPublishDate(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		expected string
		ok       bool
	}{
		{"valid date", "20240131", "2024-01-31", true},
		{"absent date", "", Unavailable, true},
		{"short value", "202401", Unavailable, false},
		{"not a date", "2024ab31", Unavailable, false},
		{"impossible month", "20241301", Unavailable, false},
		{"dashed input", "2024-01-3", Unavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatPublishDate(tt.upstream)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("FormatPublishDate(%q) = (%q, %v), expected (%q, %v)", tt.upstream, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestUnavailableRecord(t *testing.T) {
	url := "https://www.youtube.com/watch?v=abc"
	r := UnavailableRecord(url)

	if r.SourceURL != url {
		t.Errorf("SourceURL = %q, expected %q", r.SourceURL, url)
	}
	for name, v := range map[string]string{
		"Title":       r.Title,
		"Channel":     r.Channel,
		"PublishDate": r.PublishDate,
		"Description": r.Description,
	} {
		if v != Unavailable {
			t.Errorf("%s = %q, expected %q", name, v, Unavailable)
		}
	}
	if r.DurationSeconds != 0 || r.DurationMinutes != 0 || r.ViewCount != 0 {
		t.Errorf("numeric fields should be zero, got %+v", r)
	}
	if r.HasPlaylist() {
		t.Error("sentinel record should not carry playlist fields")
	}
}

func TestNewVideoRecord_Defaults(t *testing.T) {
	r := NewVideoRecord("u", "", -10, "", -3, "", "")

	if r.Title != Unavailable || r.Channel != Unavailable || r.Description != Unavailable || r.PublishDate != Unavailable {
		t.Errorf("empty strings should degrade to %q, got %+v", Unavailable, r)
	}
	if r.DurationSeconds != 0 || r.ViewCount != 0 {
		t.Errorf("negative numbers should clamp to 0, got %+v", r)
	}
}

func TestVideoRecord_WithPlaylist(t *testing.T) {
	base := NewVideoRecord("u", "Title", 120, "Chan", 5, "2024-01-01", "Desc")
	withPl := base.WithPlaylist("My List", 3)

	if base.HasPlaylist() {
		t.Error("WithPlaylist must not mutate the receiver")
	}
	if !withPl.HasPlaylist() || withPl.PlaylistTitle != "My List" || withPl.PlaylistIndex != 3 {
		t.Errorf("unexpected playlist fields: %+v", withPl)
	}
	if withPl.Title != base.Title || withPl.DurationMinutes != 2 {
		t.Errorf("other fields should be preserved: %+v", withPl)
	}
}
