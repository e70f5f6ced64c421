package settings

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// File is a YAML-file-backed Store. Besides Load/Save it can watch the
// file and notify on external edits, so a long-running service picks up
// preference changes without a restart.
type File struct {
	path string
	log  *slog.Logger
}

// NewFile creates a store over the YAML file at path. The file does not
// need to exist yet; Load returns ErrNotFound until it does.
func NewFile(path string, log *slog.Logger) *File {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &File{path: path, log: log}
}

// Load reads and decodes the settings file.
// Returns ErrNotFound when the file does not exist.
func (f *File) Load(_ context.Context) (Settings, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save encodes the settings and writes them atomically: to a temp file
// in the same directory, then renamed over the target, so a watcher
// never observes a half-written file.
func (f *File) Save(_ context.Context, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".settings-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Watch blocks until ctx is done, invoking fn with freshly loaded
// settings whenever the file is written or replaced. Reload failures are
// logged and skipped; the previous settings stay in effect. The parent
// directory is watched, not the file itself, so atomic renames and
// editors that replace the inode are still observed.
func (f *File) Watch(ctx context.Context, fn func(Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != f.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			s, err := f.Load(ctx)
			if err != nil {
				f.log.WarnContext(ctx, "settings reload failed",
					slog.String("path", f.path), slog.String("error", err.Error()))
				continue
			}
			fn(s)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.log.WarnContext(ctx, "settings watcher error", slog.String("error", err.Error()))
		}
	}
}

var _ Store = (*File)(nil)
