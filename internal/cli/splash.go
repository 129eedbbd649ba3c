package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/hpqaq/internal/locale"
	"github.com/muesli/cancelreader"
	"github.com/schollz/progressbar/v3"
)

// SplashDuration is how long the splash plays before entering the dashboard.
const SplashDuration = 2600 * time.Millisecond

var splashSteps = []locale.Key{
	locale.KeySplashInit,
	locale.KeySplashLoad,
	locale.KeySplashIndex,
	locale.KeySplashReady,
}

// IntroStore records that the intro has been shown.
type IntroStore interface {
	MarkIntroSeen(ctx context.Context) error
}

// Splash is the intro shown before the dashboard.
type Splash struct {
	input    io.Reader
	writer   io.Writer
	ctx      locale.Context
	duration time.Duration
}

// NewSplash creates a splash reading Enter from input.
func NewSplash(input io.Reader, writer io.Writer, ctx locale.Context) *Splash {
	return &Splash{input: input, writer: writer, ctx: ctx, duration: SplashDuration}
}

// WithDuration overrides SplashDuration.
func (s *Splash) WithDuration(d time.Duration) *Splash {
	s.duration = d
	return s
}

// Run plays the steps until they complete or Enter is pressed, then marks
// the intro as seen. It reports whether the splash was skipped.
func (s *Splash) Run(ctx context.Context, store IntroStore) (bool, error) {
	if _, err := fmt.Fprintln(s.writer, RenderBox(s.ctx.T(locale.KeyAppTitle, nil), SubtitleStyle.Render(s.ctx.T(locale.KeySplashSkip, nil)))); err != nil {
		return false, fmt.Errorf("failed to write splash: %w", err)
	}

	bar := progressbar.NewOptions(len(splashSteps),
		progressbar.OptionSetWriter(s.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]"+s.ctx.T(splashSteps[0], nil)+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[magenta]=[reset]",
			SaucerHead:    "[magenta]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(s.writer); err != nil {
				slog.Warn("Failed to write newline after splash", "error", err)
			}
		}),
	)

	skip, stop := s.watchEnter()
	defer stop()

	skipped, err := s.play(ctx, bar, skip)
	if err != nil {
		return false, err
	}
	if store != nil {
		if err := store.MarkIntroSeen(ctx); err != nil {
			return skipped, fmt.Errorf("failed to record intro: %w", err)
		}
	}
	return skipped, nil
}

func (s *Splash) play(ctx context.Context, bar *progressbar.ProgressBar, skip <-chan struct{}) (bool, error) {
	ticker := time.NewTicker(max(s.duration/time.Duration(len(splashSteps)), time.Millisecond))
	defer ticker.Stop()

	for i, step := range splashSteps {
		bar.Describe("[cyan]" + s.ctx.T(step, nil) + "[reset]")
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-skip:
			if err := bar.Finish(); err != nil {
				slog.Debug("splash bar finish failed", "error", err)
			}
			return true, nil
		case <-ticker.C:
		}
		if err := bar.Add(1); err != nil {
			slog.Debug("splash bar update failed", "error", err, "step", i)
		}
	}
	return false, nil
}

// watchEnter closes the returned channel when a line is read from input.
// stop cancels the pending read so the terminal is free for the dashboard.
func (s *Splash) watchEnter() (<-chan struct{}, func()) {
	pressed := make(chan struct{})
	if s.input == nil {
		return pressed, func() {}
	}
	cr, err := cancelreader.NewReader(s.input)
	if err != nil {
		slog.Debug("splash cannot watch input", "error", err)
		return pressed, func() {}
	}

	go func() {
		defer func() { _ = cr.Close() }()
		if _, err := bufio.NewReader(cr).ReadString('\n'); err == nil {
			close(pressed)
		}
	}()
	return pressed, func() { cr.Cancel() }
}
