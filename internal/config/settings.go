package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Quality presets for downloads
type QualityPreset string

const (
	QualityBest   QualityPreset = "best"
	QualityMedium QualityPreset = "medium"
	QualityAudio  QualityPreset = "audio"
)

// Playlist sources
const (
	PlaylistSourceYTDLP  = "ytdlp"
	PlaylistSourceNative = "native"
)

// Default values
const (
	DefaultDownloadDir      = "downloaded_videos"
	DefaultReportDir        = "."
	DefaultLogFile          = "youtube_downloader.log"
	DefaultLogLevel         = "info"
	DefaultQualityPreset    = QualityBest
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultPlaylistSource   = PlaylistSourceYTDLP
	DefaultAutoInstall      = true
	DefaultProgressInterval = time.Second
	DefaultPlaylistTimeout  = time.Duration(0)
)

// formatSelectors maps presets to yt-dlp format selectors
var formatSelectors = map[QualityPreset]string{
	QualityBest:   "best",
	QualityMedium: "best[height<=720]/best",
	QualityAudio:  "bestaudio/best",
}

// Settings holds application configuration. Precedence, lowest first:
// defaults, YAML file, environment.
type Settings struct {
	DownloadDir      string        `yaml:"download_dir" envconfig:"DOWNLOAD_DIR"`
	ReportDir        string        `yaml:"report_dir" envconfig:"REPORT_DIR"`
	LogFile          string        `yaml:"log_file" envconfig:"LOG_FILE"`
	LogLevel         string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	QualityPreset    QualityPreset `yaml:"quality_preset" envconfig:"QUALITY_PRESET"`
	FilenameTemplate string        `yaml:"filename_template" envconfig:"FILENAME_TEMPLATE"`
	PlaylistSource   string        `yaml:"playlist_source" envconfig:"PLAYLIST_SOURCE"`
	AutoInstall      bool          `yaml:"auto_install" envconfig:"AUTO_INSTALL"`
	ProgressInterval time.Duration `yaml:"progress_interval" envconfig:"PROGRESS_INTERVAL"`
	PlaylistTimeout  time.Duration `yaml:"playlist_timeout" envconfig:"PLAYLIST_TIMEOUT"` // native source only; 0 disables
	MetricsTextfile  string        `yaml:"metrics_textfile" envconfig:"METRICS_TEXTFILE"`
}

// Default returns settings populated with defaults
func Default() *Settings {
	return &Settings{
		DownloadDir:      DefaultDownloadDir,
		ReportDir:        DefaultReportDir,
		LogFile:          DefaultLogFile,
		LogLevel:         DefaultLogLevel,
		QualityPreset:    DefaultQualityPreset,
		FilenameTemplate: DefaultFilenameTemplate,
		PlaylistSource:   DefaultPlaylistSource,
		AutoInstall:      DefaultAutoInstall,
		ProgressInterval: DefaultProgressInterval,
		PlaylistTimeout:  DefaultPlaylistTimeout,
	}
}

// Load builds settings from defaults, the optional YAML file at path, and
// environment variables.
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", s); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return s, nil
}

// Validate validates the configuration
func (s *Settings) Validate() error {
	if s.DownloadDir == "" {
		return fmt.Errorf("DOWNLOAD_DIR must not be empty")
	}
	if s.LogFile == "" {
		return fmt.Errorf("LOG_FILE must not be empty")
	}
	if _, ok := formatSelectors[s.QualityPreset]; !ok {
		return fmt.Errorf("QUALITY_PRESET must be one of %s; got %q", presetNames(), s.QualityPreset)
	}
	if s.PlaylistSource != PlaylistSourceYTDLP && s.PlaylistSource != PlaylistSourceNative {
		return fmt.Errorf("PLAYLIST_SOURCE must be %q or %q; got %q", PlaylistSourceYTDLP, PlaylistSourceNative, s.PlaylistSource)
	}
	if s.ProgressInterval <= 0 {
		return fmt.Errorf("PROGRESS_INTERVAL must be positive")
	}
	if s.PlaylistTimeout < 0 {
		return fmt.Errorf("PLAYLIST_TIMEOUT must not be negative")
	}
	return nil
}

// FormatSelector returns the yt-dlp format selector for the quality preset
func (s *Settings) FormatSelector() string {
	if f, ok := formatSelectors[s.QualityPreset]; ok {
		return f
	}
	return formatSelectors[DefaultQualityPreset]
}

// GetQualityPresetOptions returns available quality preset options
func GetQualityPresetOptions() []QualityPreset {
	return []QualityPreset{QualityBest, QualityMedium, QualityAudio}
}

func presetNames() string {
	options := GetQualityPresetOptions()
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}
