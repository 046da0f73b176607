// Package storage keeps a record of export runs: one directory per run
// holding metadata.json and a per-frame timeline.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var timelineHeader = []string{"frame", "time_ms", "drawn", "skipped", "file"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scene     string    `json:"scene"`
	Title     string    `json:"title,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Format    string    `json:"format"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	FPS       float64   `json:"fps"`
	Duration  float64   `json:"duration_ms"`
	Frames    int       `json:"frames"`
	Drawn     int       `json:"drawn"`
	Skipped   int       `json:"skipped"`
	Output    string    `json:"output"`
	Elapsed   float64   `json:"elapsed_ms"`
}

// FrameRecord is one row of a run timeline.
type FrameRecord struct {
	Index   int
	Time    float64
	Drawn   int
	Skipped int
	File    string
}

// Save writes a new run and returns its id. Totals in meta are derived
// from frames.
func (s *Store) Save(meta RunMetadata, frames []FrameRecord) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	runID, runDir, err := s.newRunDir(meta.Scene, meta.Timestamp)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Frames = len(frames)
	meta.Drawn, meta.Skipped = 0, 0
	for _, f := range frames {
		meta.Drawn += f.Drawn
		meta.Skipped += f.Skipped
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeTimeline(filepath.Join(runDir, "timeline.csv"), frames); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) newRunDir(sceneID string, ts time.Time) (string, string, error) {
	if sceneID == "" {
		sceneID = "scene"
	}
	base := fmt.Sprintf("%s_%d", sceneID, ts.Unix())
	if err := s.Init(); err != nil {
		return "", "", err
	}
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTimeline(path string, frames []FrameRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(timelineHeader); err != nil {
		return err
	}
	for _, fr := range frames {
		row := []string{
			strconv.Itoa(fr.Index),
			strconv.FormatFloat(fr.Time, 'f', 3, 64),
			strconv.Itoa(fr.Drawn),
			strconv.Itoa(fr.Skipped),
			fr.File,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTimeline reads a run's timeline. Rows that do not parse are skipped.
func (s *Store) LoadTimeline(runID string) ([]FrameRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "timeline.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameRecord{}, nil
	}

	frames := make([]FrameRecord, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 4 {
			continue
		}
		idx, err1 := strconv.Atoi(rec[0])
		t, err2 := strconv.ParseFloat(rec[1], 64)
		drawn, err3 := strconv.Atoi(rec[2])
		skipped, err4 := strconv.Atoi(rec[3])
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			continue
		}
		fr := FrameRecord{Index: idx, Time: t, Drawn: drawn, Skipped: skipped}
		if len(rec) > 4 {
			fr.File = rec[4]
		}
		frames = append(frames, fr)
	}
	return frames, nil
}
