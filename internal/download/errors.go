package download

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is returned by RunSingle when the media could not be downloaded.
// No report is written in that case.
var ErrFetchFailed = errors.New("video download failed")

// PlaylistResolutionError reports that a playlist URL could not be enumerated
type PlaylistResolutionError struct {
	URL string
	Err error
}

func (e *PlaylistResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve playlist %s: %v", e.URL, e.Err)
}

func (e *PlaylistResolutionError) Unwrap() error {
	return e.Err
}

// recoveredError converts a recovered panic value into an error
func recoveredError(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("unexpected panic: %w", err)
	}
	return fmt.Errorf("unexpected panic: %v", p)
}
