// Package app wires configuration, logging, the yt-dlp engine and the batch
// service into the command-line program.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-catalog/internal/config"
	"github.com/ytget/yt-catalog/internal/download"
	"github.com/ytget/yt-catalog/internal/logging"
	"github.com/ytget/yt-catalog/internal/metrics"
	"github.com/ytget/yt-catalog/internal/platform"
	"github.com/ytget/yt-catalog/internal/prompt"
	"github.com/ytget/yt-catalog/internal/report"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Options are the command-line flags
type Options struct {
	ConfigPath  string
	Mode        string
	URL         string
	Folder      string
	ShowVersion bool
}

// ParseFlags parses args (without the program name)
func ParseFlags(args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("yt-catalog", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.ConfigPath, "config", "", "path to config file (YAML)")
	fs.StringVar(&opts.Mode, "mode", "", "download mode: 1/single or 2/playlist (prompted when empty)")
	fs.StringVar(&opts.URL, "url", "", "video or playlist URL (prompted when empty)")
	fs.StringVar(&opts.Folder, "folder", "", "folder to save videos (prompted when empty)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

// Run executes the program and returns its exit code
func Run(ctx context.Context, version string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "yt-catalog %s\n", version)
		return ExitOK
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return ExitUsage
	}

	logger, closer, err := logging.New(logging.Config{
		Level:   settings.LogLevel,
		File:    settings.LogFile,
		Console: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	defer closer.Close()

	logger = logging.WithComponent(logger, "main")
	logger.Info().Str("version", version).Msg("yt-catalog starting")

	req := prompt.Request{URL: opts.URL, Folder: opts.Folder}
	if opts.Mode != "" {
		if req.Mode, err = prompt.ParseMode(opts.Mode); err != nil {
			logger.Error().Err(err).Msg("invalid -mode flag")
			return ExitUsage
		}
	}
	req, err = prompt.New(stdin, stdout, settings.DownloadDir).Fill(ctx, req)
	if interrupted(ctx, logger) {
		return ExitOK
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return ExitUsage
	}

	engine := platform.NewYTDLP(logger)
	engine.SetProgressInterval(settings.ProgressInterval)
	if settings.AutoInstall {
		err := engine.EnsureInstalled(ctx)
		if interrupted(ctx, logger) {
			return ExitOK
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to install yt-dlp")
			return ExitFailure
		}
	}

	recorder := metrics.NewRecorder()
	service := download.NewService(download.Deps{
		Extractor:        engine,
		Playlists:        playlistSource(settings, engine),
		Downloader:       engine,
		Reports:          report.NewWriter(settings.ReportDir, logger),
		Metrics:          recorder,
		Logger:           logger,
		Format:           settings.FormatSelector(),
		FilenameTemplate: settings.FilenameTemplate,
	})

	code := Execute(ctx, service, req, logger)

	if err := recorder.WriteTextfile(settings.MetricsTextfile); err != nil {
		logger.Warn().Err(err).Msg("failed to export metrics")
	}
	return code
}

func playlistSource(settings *config.Settings, engine *platform.YTDLP) platform.PlaylistSource {
	if settings.PlaylistSource == config.PlaylistSourceNative {
		native := platform.NewNativePlaylistSource()
		native.SetTimeout(settings.PlaylistTimeout)
		return native
	}
	return engine
}

// interrupted logs and reports a cancelled run context
func interrupted(ctx context.Context, logger zerolog.Logger) bool {
	if ctx.Err() == nil {
		return false
	}
	logger.Warn().Msg("process stopped by user")
	return true
}

// Execute runs the requested workflow. An interrupt is not a failure.
func Execute(ctx context.Context, runner download.Runner, req prompt.Request, logger zerolog.Logger) int {
	var err error
	switch req.Mode {
	case prompt.ModeSingle:
		_, err = runner.RunSingle(ctx, req.URL, req.Folder)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Str("url", req.URL).Msg("failed to process video")
		}
	case prompt.ModePlaylist:
		_, err = runner.RunPlaylist(ctx, req.URL, req.Folder)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Str("url", req.URL).Msg("failed to process playlist")
		}
	default:
		logger.Error().Str("mode", string(req.Mode)).Msg("unknown mode")
		return ExitUsage
	}

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		logger.Warn().Msg("process stopped by user")
		return ExitOK
	default:
		return ExitFailure
	}
}
