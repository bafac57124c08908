package download

import (
	"context"
	"errors"
	"fmt"

	"github.com/ytget/yt-catalog/internal/model"
	"github.com/ytget/yt-catalog/internal/platform"
)

// fakeEngine is an in-memory stand-in for yt-dlp
type fakeEngine struct {
	infos         map[string]*platform.MediaInfo
	extractErr    map[string]error
	extractPanic  map[string]bool
	downloadErr   map[string]error
	downloadPanic map[string]bool
	playlist      *model.Playlist
	playlistErr   error

	// cancel, when set, is called while downloading cancelOn
	cancel   context.CancelFunc
	cancelOn string

	extractCalls  []extractCall
	downloadCalls []platform.DownloadRequest
	playlistCalls int
}

type extractCall struct {
	url  string
	flat bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		infos:         map[string]*platform.MediaInfo{},
		extractErr:    map[string]error{},
		extractPanic:  map[string]bool{},
		downloadErr:   map[string]error{},
		downloadPanic: map[string]bool{},
	}
}

func (f *fakeEngine) calls() int {
	return len(f.extractCalls) + len(f.downloadCalls) + f.playlistCalls
}

func (f *fakeEngine) Extract(_ context.Context, url string, flat bool) (*platform.MediaInfo, error) {
	f.extractCalls = append(f.extractCalls, extractCall{url: url, flat: flat})
	if f.extractPanic[url] {
		panic("extractor blew up")
	}
	if err := f.extractErr[url]; err != nil {
		return nil, err
	}
	if info, ok := f.infos[url]; ok {
		return info, nil
	}
	return nil, errors.New("ERROR: Video unavailable")
}

func (f *fakeEngine) ListPlaylist(_ context.Context, url string) (*model.Playlist, error) {
	f.playlistCalls++
	if f.playlistErr != nil {
		return nil, f.playlistErr
	}
	return f.playlist, nil
}

func (f *fakeEngine) Download(_ context.Context, req platform.DownloadRequest, observer platform.ProgressObserver) error {
	f.downloadCalls = append(f.downloadCalls, req)
	if f.cancel != nil && req.URL == f.cancelOn {
		f.cancel()
		return context.Canceled
	}
	if f.downloadPanic[req.URL] {
		panic(fmt.Sprintf("unexpected failure downloading %s", req.URL))
	}
	if err := f.downloadErr[req.URL]; err != nil {
		return err
	}
	observer.OnProgress("50.0%")
	observer.OnComplete(req.Folder + "/video.mp4")
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func videoInfo(title string, seconds float64) *platform.MediaInfo {
	return &platform.MediaInfo{
		Title:       title,
		Duration:    floatPtr(seconds),
		Uploader:    "Uploader",
		ViewCount:   floatPtr(42),
		UploadDate:  "20240102",
		Description: "About " + title + ", with commas",
	}
}

func playlistOf(title string, urls ...string) *model.Playlist {
	p := model.NewPlaylist("https://www.youtube.com/playlist?list=PLtest")
	p.Title = title
	for _, u := range urls {
		p.AddEntry(u, "")
	}
	return p
}

var videoInfoMissing = platform.MediaInfo{Title: "Only a title"}
