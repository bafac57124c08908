package download

import (
	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/platform"
)

// LogObserver reports download progress to the log and keeps nothing
type LogObserver struct {
	logger zerolog.Logger
}

var _ platform.ProgressObserver = (*LogObserver)(nil)

// NewLogObserver creates an observer logging through logger
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// OnProgress implements platform.ProgressObserver
func (o *LogObserver) OnProgress(percent string) {
	o.logger.Info().Str("progress", percent).Msg("downloading")
}

// OnComplete implements platform.ProgressObserver
func (o *LogObserver) OnComplete(filename string) {
	o.logger.Info().Str("file", filename).Msg("download finished")
}
