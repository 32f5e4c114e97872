package rag

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVectorCache struct {
	data      map[string]map[int][]float32
	loadCalls int
	saveCalls int
}

func newFakeVectorCache() *fakeVectorCache {
	return &fakeVectorCache{data: map[string]map[int][]float32{}}
}

func (f *fakeVectorCache) key(catalog, model string) string {
	return catalog + "/" + model
}

func (f *fakeVectorCache) Load(ctx context.Context, catalog, model string) (map[int][]float32, error) {
	f.loadCalls++
	out := map[int][]float32{}
	for pos, vec := range f.data[f.key(catalog, model)] {
		out[pos] = vec
	}
	return out, nil
}

func (f *fakeVectorCache) Save(ctx context.Context, catalog, model string, vectors map[int][]float32) error {
	f.saveCalls++
	stored := f.data[f.key(catalog, model)]
	if stored == nil {
		stored = map[int][]float32{}
		f.data[f.key(catalog, model)] = stored
	}
	for pos, vec := range vectors {
		stored[pos] = vec
	}
	return nil
}

func TestKnowledgeBaseLoad(t *testing.T) {
	embedder := &fakeEmbedder{}
	kb := NewKnowledgeBase(embedder)
	require.NoError(t, kb.Load(context.Background(), ""))

	assert.True(t, kb.Loaded())
	assert.Len(t, kb.entries, len(curriculumCatalog))
	assert.Len(t, kb.index, len(curriculumCatalog))
}

func TestKnowledgeBaseEntriesFor(t *testing.T) {
	kb := loadedKB(t, &fakeEmbedder{})

	grade5 := kb.EntriesFor(5, "")
	require.Len(t, grade5, 4)

	science := kb.EntriesFor(5, "science")
	require.Len(t, science, 1)
	assert.Equal(t, "Ecosystems and Environment", science[0].ChapterName)

	// subject match is substring based and case folded
	assert.Len(t, kb.EntriesFor(5, "SCI"), 1)
	assert.Empty(t, kb.EntriesFor(5, "art"))
	assert.Empty(t, kb.EntriesFor(12, ""))
}

func TestKnowledgeBaseEmbeddingCacheReuse(t *testing.T) {
	cache := newFakeVectorCache()

	first := &fakeEmbedder{}
	kb := NewKnowledgeBase(first, WithVectorCache(cache, "fake-model"))
	require.NoError(t, kb.Load(context.Background(), ""))
	assert.Equal(t, 1, first.docCalls)
	assert.Equal(t, 1, cache.saveCalls)

	second := &fakeEmbedder{}
	kb2 := NewKnowledgeBase(second, WithVectorCache(cache, "fake-model"))
	require.NoError(t, kb2.Load(context.Background(), ""))
	assert.Zero(t, second.docCalls, "warm cache must not re-embed the catalog")

	// a different model key misses the cache
	third := &fakeEmbedder{}
	kb3 := NewKnowledgeBase(third, WithVectorCache(cache, "other-model"))
	require.NoError(t, kb3.Load(context.Background(), ""))
	assert.Equal(t, 1, third.docCalls)
}

func TestAuxCatalogLoading(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	writeFile("states.json", `[{"topic":"Kerala","content":"Kerala is a state on the Malabar Coast."},{"topic":"Punjab","content":"Punjab is known for agriculture."}]`)
	writeFile("broken.json", `{"not": "a list"`)
	writeFile("empty.json", `[]`)
	writeFile("notes.txt", `ignored`)

	kb := NewKnowledgeBase(&fakeEmbedder{})
	require.NoError(t, kb.Load(context.Background(), dir))

	assert.Equal(t, []string{"states"}, kb.Catalogs())
	assert.Len(t, kb.aux["states"].entries, 2)
	assert.Len(t, kb.aux["states"].index, 2)
}

func TestSearchCatalog(t *testing.T) {
	dir := t.TempDir()
	raw := `[{"topic":"Kerala","content":"Coastal state."},{"topic":"Punjab","content":"Agricultural state."}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "states.json"), []byte(raw), 0o644))

	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"Kerala: Coastal state.":      {0, 1, 0},
			"Punjab: Agricultural state.": {1, 0, 0},
		},
		queryVec: []float32{0, 1, 0},
	}
	kb := NewKnowledgeBase(embedder)
	require.NoError(t, kb.Load(context.Background(), dir))

	entry, err := kb.SearchCatalog(context.Background(), "states", "beaches and backwaters")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Kerala", entry.Topic)

	missing, err := kb.SearchCatalog(context.Background(), "unknown", "anything")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
