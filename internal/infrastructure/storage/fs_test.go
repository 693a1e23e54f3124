package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestSaveMintsIDAndBucketsBySize(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	p := &domain.Puzzle{Grid: domain.NewGrid(2), Name: "tiny"}
	require.NoError(t, s.Save(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 4, p.Size)
	assert.NotZero(t, p.CreatedAt)

	_, err := os.Stat(filepath.Join(dir, "4x4", p.ID+".json"))
	assert.NoError(t, err)
}

func TestLoadSearchesAllBuckets(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	small := &domain.Puzzle{Grid: domain.NewGrid(2)}
	big := &domain.Puzzle{Grid: domain.NewGrid(3)}
	require.NoError(t, s.Save(context.Background(), small))
	require.NoError(t, s.Save(context.Background(), big))

	got, err := s.Load(context.Background(), big.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Size)
	assert.Equal(t, big.ID, got.ID)

	_, err = s.Load(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossSizes(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	for _, bs := range []int{2, 2, 3} {
		require.NoError(t, s.Save(context.Background(), &domain.Puzzle{Grid: domain.NewGrid(bs)}))
	}
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, metas, 3)
	sizes := map[int]int{}
	for _, m := range metas {
		sizes[m.Size]++
	}
	assert.Equal(t, map[int]int{4: 2, 9: 1}, sizes)
}

func TestListEmptyStore(t *testing.T) {
	s := NewFS(filepath.Join(t.TempDir(), "missing"))
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
