package feed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/scene"
)

var ErrConnected = errors.New("feed: source already connected")

const (
	DefaultInterval   = 500 * time.Millisecond
	DefaultMinBackoff = 250 * time.Millisecond
	DefaultMaxBackoff = 8 * time.Second
)

// DirSource watches a directory for scene files and publishes each new or
// modified one. When the directory is unreadable it retries with
// exponential backoff.
type DirSource struct {
	dir        string
	hub        *Hub
	interval   time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	seen   map[string]time.Time
}

type Option func(*DirSource)

func WithInterval(d time.Duration) Option {
	return func(s *DirSource) { s.interval = d }
}

func WithBackoff(min, max time.Duration) Option {
	return func(s *DirSource) { s.minBackoff, s.maxBackoff = min, max }
}

func NewDirSource(dir string, hub *Hub, opts ...Option) *DirSource {
	s := &DirSource{
		dir:        dir,
		hub:        hub,
		interval:   DefaultInterval,
		minBackoff: DefaultMinBackoff,
		maxBackoff: DefaultMaxBackoff,
		seen:       make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextBackoff doubles cur within [min, max].
func NextBackoff(cur, min, max time.Duration) time.Duration {
	if cur < min {
		return min
	}
	next := cur * 2
	if next > max {
		return max
	}
	return next
}

// Connect starts watching in the background until ctx ends or Disconnect
// is called.
func (s *DirSource) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return ErrConnected
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
	return nil
}

// Disconnect stops watching and waits for the watcher to exit.
func (s *DirSource) Disconnect() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *DirSource) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	log := logging.Logger().With("dir", s.dir)
	var backoff time.Duration
	up := false

	for {
		wait := s.interval
		if err := s.Poll(); err != nil {
			backoff = NextBackoff(backoff, s.minBackoff, s.maxBackoff)
			wait = backoff
			if up {
				s.hub.Publish(Event{Name: Disconnected, Path: s.dir, Err: err})
				up = false
			}
			log.Warn("scene directory unavailable", "error", err, "retry", backoff)
		} else {
			backoff = 0
			if !up {
				s.hub.Publish(Event{Name: Connected, Path: s.dir})
				up = true
			}
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			if up {
				s.hub.Publish(Event{Name: Disconnected, Path: s.dir, Err: ctx.Err()})
			}
			return
		case <-t.C:
		}
	}
}

// Poll scans the directory once and publishes every scene file that is
// new or modified since the previous scan, in name order.
func (s *DirSource) Poll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read scene dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if e.IsDir() || !isSceneFile(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if prev, ok := s.seen[path]; ok && !info.ModTime().After(prev) {
			continue
		}
		s.seen[path] = info.ModTime()

		sc, err := scene.Load(path)
		if err != nil {
			logging.Logger().Warn("scene rejected", "path", path, "error", err)
			s.hub.Publish(Event{Name: SceneFailed, Path: path, Err: err})
			continue
		}
		s.hub.Publish(Event{Name: SceneLoaded, Path: path, Scene: sc})
	}
	return nil
}

func isSceneFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return !strings.HasPrefix(name, ".")
	}
	return false
}
