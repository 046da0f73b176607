package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const shapesJSON = `[{"id": "ball", "type": "circle", "props": {"x": 10, "y": 10}}]`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNextBackoff(t *testing.T) {
	tests := []struct {
		cur, want time.Duration
	}{
		{0, 250 * time.Millisecond},
		{250 * time.Millisecond, 500 * time.Millisecond},
		{4 * time.Second, 8 * time.Second},
		{8 * time.Second, 8 * time.Second},
		{6 * time.Second, 8 * time.Second},
	}
	for _, tt := range tests {
		if got := NextBackoff(tt.cur, DefaultMinBackoff, DefaultMaxBackoff); got != tt.want {
			t.Errorf("NextBackoff(%v) = %v, want %v", tt.cur, got, tt.want)
		}
	}
}

func TestPollPublishesNewFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), shapesJSON)
	writeFile(t, filepath.Join(dir, "a.json"), shapesJSON)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, "broken.json"), `{"frames": 3}`)

	hub := NewHub()
	var loaded, failed []string
	hub.Subscribe(SceneLoaded, func(ev Event) {
		loaded = append(loaded, filepath.Base(ev.Path))
		if ev.Scene == nil {
			t.Errorf("%s: nil scene", ev.Path)
		}
	})
	hub.Subscribe(SceneFailed, func(ev Event) { failed = append(failed, filepath.Base(ev.Path)) })

	src := NewDirSource(dir, hub)
	if err := src.Poll(); err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 || loaded[0] != "a.json" || loaded[1] != "b.json" {
		t.Errorf("loaded = %v", loaded)
	}
	if len(failed) != 1 || failed[0] != "broken.json" {
		t.Errorf("failed = %v", failed)
	}

	loaded = nil
	if err := src.Poll(); err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("unchanged files republished: %v", loaded)
	}

	path := filepath.Join(dir, "a.json")
	writeFile(t, path, shapesJSON)
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	if err := src.Poll(); err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0] != "a.json" {
		t.Errorf("after modification loaded = %v", loaded)
	}
}

func TestPollMissingDir(t *testing.T) {
	src := NewDirSource(filepath.Join(t.TempDir(), "missing"), NewHub())
	if err := src.Poll(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestConnectRecovers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "incoming")
	hub := NewHub()
	connected := make(chan struct{}, 1)
	loaded := make(chan string, 4)
	hub.Subscribe(Connected, func(Event) {
		select {
		case connected <- struct{}{}:
		default:
		}
	})
	hub.Subscribe(SceneLoaded, func(ev Event) { loaded <- ev.Scene.ID })

	src := NewDirSource(dir, hub,
		WithInterval(5*time.Millisecond),
		WithBackoff(5*time.Millisecond, 20*time.Millisecond))
	if err := src.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer src.Disconnect()
	if err := src.Connect(context.Background()); err != ErrConnected {
		t.Errorf("second Connect = %v, want ErrConnected", err)
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	staged := filepath.Join(filepath.Dir(dir), "wave.json")
	writeFile(t, staged, shapesJSON)
	if err := os.Rename(staged, filepath.Join(dir, "wave.json")); err != nil {
		t.Fatal(err)
	}

	select {
	case <-connected:
	case <-time.After(5 * time.Second):
		t.Fatal("source never connected")
	}
	select {
	case id := <-loaded:
		if id != "wave" {
			t.Errorf("scene id = %q, want wave", id)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scene never published")
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	src := NewDirSource(t.TempDir(), NewHub(), WithInterval(time.Millisecond))
	src.Disconnect()
	if err := src.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	src.Disconnect()
	src.Disconnect()
	if err := src.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	src.Disconnect()
}
