package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "1", want: ModeSingle},
		{in: "2", want: ModePlaylist},
		{in: "single", want: ModeSingle},
		{in: " Playlist ", want: ModePlaylist},
		{in: "3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFill_AsksEverything(t *testing.T) {
	in := strings.NewReader("3\nabc\n2\n\nhttps://www.youtube.com/playlist?list=PLx\n\n")
	out := &bytes.Buffer{}

	req, err := New(in, out, "downloaded_videos").Fill(context.Background(), Request{})
	require.NoError(t, err)

	assert.Equal(t, Request{
		Mode:   ModePlaylist,
		URL:    "https://www.youtube.com/playlist?list=PLx",
		Folder: "downloaded_videos",
	}, req)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice"))
}

func TestFill_KeepsProvidedFields(t *testing.T) {
	in := strings.NewReader("my_videos\n")
	out := &bytes.Buffer{}

	req, err := New(in, out, "downloaded_videos").Fill(context.Background(), Request{
		Mode: ModeSingle,
		URL:  "https://youtu.be/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "my_videos", req.Folder)
	assert.NotContains(t, out.String(), "Select download mode")
	assert.NotContains(t, out.String(), "Enter YouTube URL")
}

func TestFill_EOF(t *testing.T) {
	_, err := New(strings.NewReader("9\n"), io.Discard, "downloaded_videos").Fill(context.Background(), Request{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFill_CancelledWhileWaiting(t *testing.T) {
	stdin, feed := io.Pipe()
	t.Cleanup(func() { feed.Close() })
	out := &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := New(stdin, out, "downloaded_videos").Fill(ctx, Request{})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Fill did not return after cancellation")
	}
	assert.Contains(t, out.String(), "Enter choice (1/2): ")
}

func TestFill_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(strings.NewReader("1\nhttps://youtu.be/x\n\n"), io.Discard, "downloaded_videos").Fill(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
