// Package jsonfile implements store.Store on top of two JSON documents: a
// mutable channels document rewritten after every update, and a read-only
// application directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
)

// Options locates the documents. Template paths are optional; when set and
// the live document does not exist yet, the template is copied into place
// before loading.
type Options struct {
	ChannelsFile         string
	ChannelsTemplateFile string
	DirectoryFile        string
	DirectoryTemplate    string
}

type Store struct {
	path string

	// mu guards channels and the document at path. Writers hold it for the
	// whole update, including the disk write.
	mu       sync.RWMutex
	channels map[string]domain.Record
	closed   bool

	directory domain.Directory
}

var _ store.Store = (*Store)(nil)

// NewStore loads both documents. Any missing or malformed document is an
// error; there is no empty fallback.
func NewStore(opts Options) (*Store, error) {
	if opts.ChannelsFile == "" {
		return nil, fmt.Errorf("channels file path is required")
	}
	if opts.DirectoryFile == "" {
		return nil, fmt.Errorf("directory file path is required")
	}

	if err := ensureFromTemplate(opts.ChannelsFile, opts.ChannelsTemplateFile); err != nil {
		return nil, fmt.Errorf("bootstrap channels document: %w", err)
	}
	if err := ensureFromTemplate(opts.DirectoryFile, opts.DirectoryTemplate); err != nil {
		return nil, fmt.Errorf("bootstrap directory document: %w", err)
	}

	channels, err := loadChannels(opts.ChannelsFile)
	if err != nil {
		return nil, err
	}

	directory, err := LoadDirectory(opts.DirectoryFile)
	if err != nil {
		return nil, err
	}

	return &Store{
		path:      opts.ChannelsFile,
		channels:  channels,
		directory: directory,
	}, nil
}

func loadChannels(path string) (map[string]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channels document: %w", err)
	}

	var channels map[string]domain.Record
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("parse channels document %s: %w", path, err)
	}
	if channels == nil {
		return nil, fmt.Errorf("parse channels document %s: top level must be an object", path)
	}
	return channels, nil
}

func (s *Store) Channels() store.Channels { return channelsRepo{s} }

func (s *Store) Directory() domain.Directory { return s.directory }

// Close writes the channel map a final time. Later updates fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.persistLocked(s.channels)
}

// Ping checks that the document's directory is still there, which is what
// the next atomic write needs.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("stat channels directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

// persistLocked writes channels to the document. Callers hold mu.
func (s *Store) persistLocked(channels map[string]domain.Record) error {
	data, err := json.MarshalIndent(channels, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal channels document: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write channels document: %w", err)
	}
	return nil
}
