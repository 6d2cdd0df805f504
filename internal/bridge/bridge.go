// ABOUTME: File hand-off transport between an external UI and the dialogue engine
// ABOUTME: Watches an input file with fsnotify, replies through an output file
package bridge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/moviemate/moviemate/internal/dialogue"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
)

// Bridge shuttles messages between an external UI and the dialogue engine
// through a pair of plain-text files. The UI appends the user's line to the
// input file; the bridge truncates the input after a successful read and
// writes the reply to the output file.
type Bridge struct {
	inputPath    string
	outputPath   string
	pollInterval time.Duration
	engine       *dialogue.Engine

	prev models.Turn
}

// New returns a bridge over the given file pair. The conversation starts
// from the fixed greeting turn, matching a fresh chat session.
func New(inputPath, outputPath string, pollInterval time.Duration, engine *dialogue.Engine) *Bridge {
	return &Bridge{
		inputPath:    inputPath,
		outputPath:   outputPath,
		pollInterval: pollInterval,
		engine:       engine,
		prev:         models.Greeting(),
	}
}

// Run watches the input file until ctx is cancelled. File events drive the
// loop; a poll ticker backs them up for filesystems where fsnotify misses
// writes. Returns nil on cancellation.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.ensureFiles(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors and UIs that replace the
	// file would otherwise detach the watch.
	if err := watcher.Add(filepath.Dir(b.inputPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(b.inputPath), err)
	}

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	logging.Info().
		Str("input", b.inputPath).
		Str("output", b.outputPath).
		Dur("poll_interval", b.pollInterval).
		Msg("Bridge started")

	// Pick up anything written before the watch began.
	b.drain()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != b.inputPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				b.drain()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error().Err(err).Msg("File watcher error")

		case <-ticker.C:
			b.drain()

		case <-ctx.Done():
			logging.Info().Msg("Bridge stopped")
			return nil
		}
	}
}

// drain reads and truncates the input file, then answers each pending line.
// A line written between the read and the truncate is lost; the transport
// assumes a single writer that waits for its reply.
func (b *Bridge) drain() {
	data, err := os.ReadFile(b.inputPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Error().Err(err).Str("path", b.inputPath).Msg("Failed to read bridge input")
		}
		return
	}
	if strings.TrimSpace(string(data)) == "" {
		return
	}
	if err := os.Truncate(b.inputPath, 0); err != nil {
		logging.Error().Err(err).Str("path", b.inputPath).Msg("Failed to truncate bridge input")
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.handleLine(line)
	}
}

// handleLine runs one dialogue turn and writes the reply to the output file.
func (b *Bridge) handleLine(line string) {
	turn := b.engine.Respond(line, b.prev)
	b.prev = turn

	if err := os.WriteFile(b.outputPath, []byte(turn.Message+"\n"), 0o644); err != nil {
		logging.Error().Err(err).Str("path", b.outputPath).Msg("Failed to write bridge output")
		return
	}
	logging.Debug().
		Str("intent", string(turn.Intent)).
		Int("chars", len(turn.Message)).
		Msg("Bridge replied")
}

// ensureFiles creates the input and output files and their directories so
// the UI can open them immediately.
func (b *Bridge) ensureFiles() error {
	for _, path := range []string{b.inputPath, b.outputPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating bridge directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("creating bridge file %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing bridge file %s: %w", path, err)
		}
	}
	return nil
}
