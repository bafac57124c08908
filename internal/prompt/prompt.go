// Package prompt asks the user for the run parameters on a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Mode selects the workflow
type Mode string

const (
	ModeSingle   Mode = "single"
	ModePlaylist Mode = "playlist"
)

// ErrInvalidMode is returned by ParseMode for unknown values
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode accepts the menu numbers or the mode names
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(ModeSingle):
		return ModeSingle, nil
	case "2", string(ModePlaylist):
		return ModePlaylist, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Request is what one run needs
type Request struct {
	Mode   Mode
	URL    string
	Folder string
}

// Prompter reads answers line by line. Input is consumed by a background
// reader so a question can be abandoned when the context is cancelled.
type Prompter struct {
	in            *bufio.Scanner
	out           io.Writer
	defaultFolder string

	start   sync.Once
	lines   chan string
	readErr error // valid once lines is closed
}

// New creates a prompter. Empty folder answers fall back to defaultFolder.
func New(in io.Reader, out io.Writer, defaultFolder string) *Prompter {
	return &Prompter{
		in:            bufio.NewScanner(in),
		out:           out,
		defaultFolder: defaultFolder,
		lines:         make(chan string),
	}
}

// Fill asks for every field of req that is still empty
func (p *Prompter) Fill(ctx context.Context, req Request) (Request, error) {
	var err error
	if req.Mode == "" {
		if req.Mode, err = p.AskMode(ctx); err != nil {
			return req, err
		}
	}
	if req.URL == "" {
		if req.URL, err = p.AskURL(ctx); err != nil {
			return req, err
		}
	}
	if req.Folder == "" {
		if req.Folder, err = p.AskFolder(ctx); err != nil {
			return req, err
		}
	}
	return req, nil
}

// AskMode shows the menu until a valid choice is entered
func (p *Prompter) AskMode(ctx context.Context) (Mode, error) {
	fmt.Fprintln(p.out, "\nSelect download mode:")
	fmt.Fprintln(p.out, "1. Download single video")
	fmt.Fprintln(p.out, "2. Download playlist")

	for {
		answer, err := p.ask(ctx, "Enter choice (1/2): ")
		if err != nil {
			return "", err
		}
		switch answer {
		case "1":
			return ModeSingle, nil
		case "2":
			return ModePlaylist, nil
		}
		fmt.Fprintln(p.out, "Invalid choice. Please enter 1 or 2.")
	}
}

// AskURL reads the video or playlist URL
func (p *Prompter) AskURL(ctx context.Context) (string, error) {
	for {
		answer, err := p.ask(ctx, "Enter YouTube URL: ")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// AskFolder reads the download folder
func (p *Prompter) AskFolder(ctx context.Context) (string, error) {
	answer, err := p.ask(ctx, fmt.Sprintf("Enter folder to save videos (default: %s): ", p.defaultFolder))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return p.defaultFolder, nil
	}
	return answer, nil
}

func (p *Prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.read() })

	fmt.Fprint(p.out, question)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("read answer: %w", p.readErr)
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(line), nil
	}
}

// read feeds lines to ask until input ends. A blocked terminal read cannot
// be interrupted, so the goroutine outlives a cancelled prompt.
func (p *Prompter) read() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- p.in.Text()
	}
	p.readErr = p.in.Err()
}
