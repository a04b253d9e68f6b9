package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"svw.info/cephalopod/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	ctx := context.Background()
	st := NewFS(t.TempDir())

	recs := []*domain.Record{
		{ID: "b", Problem: domain.Problem{Depth: 20, Board: domain.Board{{0, 6, 0}, {2, 2, 2}, {1, 6, 1}}}, Result: 322444322, CreatedAt: 2},
		{ID: "a", Problem: domain.Problem{Depth: 1}, Result: 111111111, CreatedAt: 1, Name: "empty"},
	}
	for _, r := range recs {
		if err := st.Save(ctx, r); err != nil {
			t.Fatalf("Save(%s): %v", r.ID, err)
		}
	}

	got, err := st.Load(ctx, "b")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Result != 322444322 || got.Problem != recs[0].Problem {
		t.Fatalf("loaded %+v", got)
	}

	metas, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 || metas[0].ID != "a" || metas[0].Name != "empty" || metas[1].Depth != 20 {
		t.Fatalf("List = %+v", metas)
	}

	if _, err := st.Load(ctx, "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) err = %v", err)
	}
}

func TestSaveRejectsBadIDs(t *testing.T) {
	st := NewFS(t.TempDir())
	for _, id := range []string{"", "../escape", ".."} {
		if err := st.Save(context.Background(), &domain.Record{ID: id}); err == nil {
			t.Fatalf("Save(%q) should fail", id)
		}
	}
}

func TestLoadRejectsPatternsAndWhitespace(t *testing.T) {
	ctx := context.Background()
	st := NewFS(t.TempDir())
	if err := st.Save(ctx, &domain.Record{ID: "secret", Problem: domain.Problem{Depth: 3}, Result: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for _, id := range []string{"*", "s?cret", "[s]ecret", "secre*", " secret", "secret "} {
		if r, err := st.Load(ctx, id); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Load(%q) = %+v, %v; want not found", id, r, err)
		}
	}
	for _, id := range []string{" sp", "a b", "x*", "q?", "[a]", "tab\t"} {
		if err := st.Save(ctx, &domain.Record{ID: id}); err == nil {
			t.Fatalf("Save(%q) should fail", id)
		}
	}
}

func TestResaveAtNewDepthReplacesRecord(t *testing.T) {
	ctx := context.Background()
	st := NewFS(t.TempDir())
	for _, depth := range []uint8{1, 2} {
		if err := st.Save(ctx, &domain.Record{ID: "dup", Problem: domain.Problem{Depth: depth}, CreatedAt: int64(depth)}); err != nil {
			t.Fatalf("Save depth %d: %v", depth, err)
		}
	}
	metas, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].Depth != 2 {
		t.Fatalf("List = %+v, want a single dup at depth 2", metas)
	}
	got, err := st.Load(ctx, "dup")
	if err != nil || got.Problem.Depth != 2 {
		t.Fatalf("Load = %+v, %v", got, err)
	}
}
