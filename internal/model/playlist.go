package model

// PlaylistEntry is one member of a playlist in playlist order
type PlaylistEntry struct {
	Index int    `json:"index"` // 1-based
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Playlist is the enumerated membership of a playlist
type Playlist struct {
	ID      string          `json:"id,omitempty"`
	Title   string          `json:"title"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`

	// Skipped counts upstream members dropped for lacking a usable URL
	Skipped int `json:"skipped,omitempty"`
}

// NewPlaylist creates an empty playlist for url
func NewPlaylist(url string) *Playlist {
	return &Playlist{
		URL:     url,
		Entries: make([]PlaylistEntry, 0),
	}
}

// AddEntry appends a member URL, assigning the next 1-based index
func (p *Playlist) AddEntry(url, title string) {
	p.Entries = append(p.Entries, PlaylistEntry{
		Index: len(p.Entries) + 1,
		URL:   url,
		Title: title,
	})
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	return len(p.Entries)
}

// URLs returns member URLs in playlist order
func (p *Playlist) URLs() []string {
	urls := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		urls = append(urls, e.URL)
	}
	return urls
}
