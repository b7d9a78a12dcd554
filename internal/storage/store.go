package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/hysym/internal/symbolic"
)

// Store persists built symbolic models under a base directory, one
// subdirectory per build: metadata.json plus the transition relation as
// transitions.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type BuildMetadata struct {
	ID          string    `json:"id"`
	System      string    `json:"system"`
	Timestamp   time.Time `json:"timestamp"`
	Boundary    string    `json:"boundary"`
	Modes       int       `json:"modes"`
	States      int       `json:"states"`
	Inputs      int       `json:"inputs"`
	Transitions int       `json:"transitions"`
	Elapsed     float64   `json:"elapsed_seconds"`
}

func (s *Store) Save(system, boundary string, elapsed time.Duration, model *symbolic.Model) (string, error) {
	buildID := fmt.Sprintf("%s_%s", system, uuid.New().String()[:8])
	buildDir := filepath.Join(s.baseDir, buildID)

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return "", err
	}

	meta := BuildMetadata{
		ID:          buildID,
		System:      system,
		Timestamp:   time.Now(),
		Boundary:    boundary,
		Modes:       model.NumModes(),
		States:      model.NumStates(),
		Inputs:      model.NumInputs(),
		Transitions: model.TransitionCount(),
		Elapsed:     elapsed.Seconds(),
	}

	metaPath := filepath.Join(buildDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(buildDir, "transitions.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"source", "input", "target", "src_mode", "src_time", "tgt_mode", "tgt_time", "label"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	var werr error
	model.Edges(func(source, input, target int) {
		if werr != nil {
			return
		}
		src, _ := model.Augmented(source)
		tgt, _ := model.Augmented(target)
		row := []string{
			strconv.Itoa(source),
			strconv.Itoa(input),
			strconv.Itoa(target),
			strconv.Itoa(src.K),
			strconv.Itoa(src.T),
			strconv.Itoa(tgt.K),
			strconv.Itoa(tgt.T),
			model.Inputs().Label(input),
		}
		werr = w.Write(row)
	})
	if werr != nil {
		return "", werr
	}

	return buildID, nil
}

func (s *Store) List() ([]BuildMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BuildMetadata{}, nil
		}
		return nil, err
	}

	builds := make([]BuildMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta BuildMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		builds = append(builds, meta)
	}

	return builds, nil
}

func (s *Store) Load(buildID string) (*BuildMetadata, error) {
	metaPath := filepath.Join(s.baseDir, buildID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta BuildMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Edge is one row of a persisted transition relation.
type Edge struct {
	Source int
	Input  int
	Target int
	Label  string
}

func (s *Store) LoadTransitions(buildID string) ([]Edge, error) {
	csvPath := filepath.Join(s.baseDir, buildID, "transitions.csv")
	file, err := os.Open(csvPath)
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

	edges := make([]Edge, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 8 {
			continue
		}
		source, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		input, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		target, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		edges = append(edges, Edge{Source: source, Input: input, Target: target, Label: record[7]})
	}

	return edges, nil
}
