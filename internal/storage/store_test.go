package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleFrames() []FrameRecord {
	return []FrameRecord{
		{Index: 0, Time: 0, Drawn: 3, File: "frame_00000.png"},
		{Index: 1, Time: 33.333, Drawn: 2, Skipped: 1, File: "frame_00001.png"},
		{Index: 2, Time: 66.667, Drawn: 3, File: "frame_00002.png"},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "runs"))
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := s.Save(RunMetadata{Scene: "orbit", Format: "png", Width: 800, Height: 600, FPS: 30, Timestamp: ts}, sampleFrames())
	if err != nil {
		t.Fatal(err)
	}
	if id != "orbit_1772366400" {
		t.Errorf("run id = %s", id)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Frames != 3 || meta.Drawn != 8 || meta.Skipped != 1 {
		t.Errorf("totals = %d frames, %d drawn, %d skipped", meta.Frames, meta.Drawn, meta.Skipped)
	}
	if !meta.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v", meta.Timestamp)
	}

	frames, err := s.LoadTimeline(id)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleFrames()
	if len(frames) != len(want) {
		t.Fatalf("got %d rows, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestSaveSameSecond(t *testing.T) {
	s := New(t.TempDir())
	ts := time.Unix(1000, 0)
	a, err := s.Save(RunMetadata{Scene: "wave", Timestamp: ts}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Save(RunMetadata{Scene: "wave", Timestamp: ts}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("runs share id %s", a)
	}
	if b != "wave_1000-1" {
		t.Errorf("second id = %s", b)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	for i, name := range []string{"a", "b", "c"} {
		if _, err := s.Save(RunMetadata{Scene: name, Timestamp: time.Unix(int64(100*(i+1)), 0)}, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(s.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i, want := range []string{"c", "b", "a"} {
		if runs[i].Scene != want {
			t.Errorf("runs[%d] = %s, want %s", i, runs[i].Scene, want)
		}
	}
}

func TestListMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadTimelineEmpty(t *testing.T) {
	s := New(t.TempDir())
	id, err := s.Save(RunMetadata{Scene: "empty"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	frames, err := s.LoadTimeline(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 0 {
		t.Errorf("expected empty timeline, got %d rows", len(frames))
	}
}

func TestLoadMissingRun(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("missing"); err == nil {
		t.Error("expected error for missing run")
	}
}
