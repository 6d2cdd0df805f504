// ABOUTME: Manages numbered conversation transcript files on disk
// ABOUTME: Tracks the active transcript through a currentchat.txt pointer file
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/moviemate/moviemate/internal/logging"
)

const (
	trackerName   = "currentchat.txt"
	filePrefix    = "chathistory_"
	fileExtension = ".txt"
)

// Store manages transcript files under a single directory. Transcripts are
// write-mostly history for the user; nothing reads them back into the engine.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// first use.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Current returns the path of the active transcript. On first use it creates
// the directory, the first transcript file, and the tracker. If the tracker
// points at a file that no longer exists, a fresh transcript is started.
func (s *Store) Current() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating transcript directory: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, trackerName))
	if err == nil {
		name := strings.TrimSpace(string(data))
		if name != "" {
			path := filepath.Join(s.dir, name)
			if _, statErr := os.Stat(path); statErr == nil {
				return path, nil
			}
			logging.Warn().Str("file", name).Msg("Tracked transcript missing, starting a new one")
		}
	}

	return s.StartNew()
}

// StartNew creates the next free chathistory_N.txt and points the tracker at it.
func (s *Store) StartNew() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating transcript directory: %w", err)
	}

	existing, err := s.List()
	if err != nil {
		return "", err
	}
	next := 0
	for _, path := range existing {
		if n, ok := transcriptIndex(filepath.Base(path)); ok && n >= next {
			next = n + 1
		}
	}

	name := fmt.Sprintf("%s%d%s", filePrefix, next, fileExtension)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", fmt.Errorf("creating transcript %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, trackerName), []byte(name+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("updating transcript tracker: %w", err)
	}
	logging.Debug().Str("file", name).Msg("Started new transcript")
	return path, nil
}

// AppendUserLine appends one user-entered line to the given transcript file.
func (s *Store) AppendUserLine(file, text string) error {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("appending to transcript: %w", err)
	}
	return nil
}

// List returns the paths of all transcript files in index order. The tracker
// file and anything else in the directory are excluded. A missing directory
// yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading transcript directory: %w", err)
	}

	type indexed struct {
		index int
		path  string
	}
	var found []indexed
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if n, ok := transcriptIndex(entry.Name()); ok {
			found = append(found, indexed{index: n, path: filepath.Join(s.dir, entry.Name())})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })

	paths := make([]string, 0, len(found))
	for _, f := range found {
		paths = append(paths, f.path)
	}
	return paths, nil
}

// transcriptIndex extracts N from a chathistory_N.txt file name.
func transcriptIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExtension) {
		return 0, false
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExtension)
	n, err := strconv.Atoi(middle)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
