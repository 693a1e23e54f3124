package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
)

// FS stores puzzles as pretty-printed JSON files, bucketed by grid
// size: ./data/9x9/<id>.json, ./data/16x16/<id>.json, and so on.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func sizeDir(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.Grid == nil {
		return errors.New("invalid puzzle: missing grid")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Size == 0 {
		p.Size = p.Grid.Size()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	target := filepath.Join(s.dir, sizeDir(p.Size), strings.TrimSpace(p.ID)+".json")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load searches every size bucket for the id.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	buckets, err := s.buckets()
	if err != nil {
		return nil, err
	}
	for _, b := range buckets {
		data, err := os.ReadFile(filepath.Join(b, id+".json"))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		if out.Size == 0 && out.Grid != nil {
			out.Size = out.Grid.Size()
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	buckets, err := s.buckets()
	if err != nil {
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, b := range buckets {
		ents, err := os.ReadDir(b)
		if err != nil {
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(b, e.Name()))
			if err != nil {
				continue
			}
			var m domain.PuzzleMeta
			if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
				continue
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// buckets lists existing size subdirectories.
func (s *FS) buckets() ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() && strings.Contains(e.Name(), "x") {
			out = append(out, filepath.Join(s.dir, e.Name()))
		}
	}
	return out, nil
}
