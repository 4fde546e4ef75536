package engineconfig

import (
	"context"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/arx-os/tripcore/internal/errdefs"
)

// Loader reads Config from a YAML file and can watch that file for
// changes, invoking a callback with the freshly reloaded Config.
// Reloads go through a singleflight group, which merges only reload
// calls that overlap in time. The watch goroutine handles events one at
// a time, so each qualifying event triggers its own reload; a save that
// emits several write events reloads several times.
type Loader struct {
	path  string
	log   *zap.Logger
	group singleflight.Group

	mu      sync.RWMutex
	current Config
}

// NewLoader creates a Loader for the YAML file at path. It does not
// read the file until Load is called.
func NewLoader(path string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{path: path, log: log, current: Default()}
}

// Load reads and parses the configured file, merging it over Default,
// and stores the result as Current. A missing file is not an error: it
// yields the default configuration, so a fresh checkout with no config
// file still runs with sane defaults rather than failing to start.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		l.setCurrent(Default())
		return l.Current(), nil
	}
	if err != nil {
		return Config{}, errdefs.Wrap(err, errdefs.KindIO, "reading config file")
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, errdefs.Wrap(err, errdefs.KindInvalidArgument, "parsing config yaml")
	}

	merged := merge(Default(), override)
	l.setCurrent(merged)
	return merged, nil
}

// Current returns the most recently loaded configuration.
func (l *Loader) Current() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *Loader) setCurrent(c Config) {
	l.mu.Lock()
	l.current = c
	l.mu.Unlock()
}

// Watch starts an fsnotify watch on the config file's directory and
// calls onReload with each successfully reloaded Config whenever the
// file changes, until ctx is canceled. Parse errors are logged and
// skipped rather than propagated, so a bad edit doesn't tear down the
// watch loop; the previous valid Config remains Current.
func (l *Loader) Watch(ctx context.Context, onReload func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errdefs.Wrap(err, errdefs.KindIO, "creating config watcher")
	}

	dir := dirOf(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errdefs.Wrap(err, errdefs.KindIO, "watching config directory")
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != l.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				l.reloadOnce(onReload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.log.Warn("config watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}

// reloadOnce runs Load through the singleflight group, so calls that
// overlap share one Load, then hands the result to onReload outside the
// group. It is called synchronously from the watch goroutine, so the
// next event is not handled until onReload returns.
func (l *Loader) reloadOnce(onReload func(Config)) {
	v, err, _ := l.group.Do(l.path, func() (interface{}, error) {
		return l.Load()
	})
	if err != nil {
		l.log.Warn("config reload failed, keeping previous configuration", zap.Error(err))
		return
	}
	l.log.Info("configuration reloaded", zap.String("path", l.path))
	onReload(v.(Config))
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
