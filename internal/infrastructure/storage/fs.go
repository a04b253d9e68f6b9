package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/cephalopod/internal/domain"
)

// FS stores one JSON file per record at <dir>/<id>.json. The depth lives in
// the record only, so an ID maps to exactly one file.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var errInvalidID = errors.New("invalid record ID")

// validID accepts letters, digits, '-', '_' and '.', up to 128 bytes.
// Anything else (separators, whitespace, glob metacharacters) is rejected.
func validID(id string) bool {
	if id == "" || len(id) > 128 || id == "." || id == ".." {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || !validID(r.ID) {
		return errInvalidID
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(r.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Record, error) {
	if !validID(id) {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out domain.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.RecordMeta
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		var r domain.Record
		if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
			continue
		}
		out = append(out, domain.RecordMeta{
			ID:        r.ID,
			Name:      r.Name,
			Depth:     r.Problem.Depth,
			Result:    r.Result,
			CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}
