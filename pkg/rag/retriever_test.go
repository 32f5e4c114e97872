package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

// fakeEmbedder answers deterministic vectors, [1,0,0] unless overridden
// per input text.
type fakeEmbedder struct {
	vectors  map[string][]float32
	queryVec []float32
	queryErr error
	docCalls int
}

func (f *fakeEmbedder) vectorFor(text string) []float32 {
	if v, ok := f.vectors[text]; ok {
		return v
	}
	return []float32{1, 0, 0}
}

func (f *fakeEmbedder) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	if f.queryErr != nil {
		return ai.EmbeddingResult{}, f.queryErr
	}
	vec := f.queryVec
	if vec == nil {
		vec = f.vectorFor(content[0])
	}
	return ai.EmbeddingResult{Model: "fake", Data: [][]float32{vec}}, nil
}

func (f *fakeEmbedder) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	f.docCalls++
	result := ai.EmbeddingResult{Model: "fake"}
	for _, text := range content {
		result.Data = append(result.Data, f.vectorFor(text))
	}
	return result, nil
}

func grade5Vectors() map[string][]float32 {
	vectors := map[string][]float32{}
	for _, entry := range curriculumCatalog {
		if entry.Grade != 5 {
			continue
		}
		switch entry.Subject {
		case "Math":
			vectors[entry.EmbeddingText()] = []float32{0, 1, 0}
		case "Science":
			vectors[entry.EmbeddingText()] = []float32{1, 0, 0}
		case "Social":
			vectors[entry.EmbeddingText()] = []float32{0.5, 0.5, 0}
		case "English":
			vectors[entry.EmbeddingText()] = []float32{0, 1, 0}
		}
	}
	return vectors
}

func loadedKB(t *testing.T, embedder *fakeEmbedder) *KnowledgeBase {
	t.Helper()
	kb := NewKnowledgeBase(embedder)
	require.NoError(t, kb.Load(context.Background(), ""))
	return kb
}

func TestRetrieveRanksBySimilarity(t *testing.T) {
	embedder := &fakeEmbedder{vectors: grade5Vectors(), queryVec: []float32{1, 0, 0}}
	kb := loadedKB(t, embedder)

	got := NewRetriever(kb, 0).Retrieve(context.Background(), "ecosystems", 5, "", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Science", got[0].Subject)
	assert.Equal(t, "Social", got[1].Subject)
}

func TestRetrieveStableTies(t *testing.T) {
	embedder := &fakeEmbedder{vectors: grade5Vectors(), queryVec: []float32{1, 0, 0}}
	kb := loadedKB(t, embedder)

	// math and english both score zero, catalog order breaks the tie
	got := NewRetriever(kb, 0).Retrieve(context.Background(), "anything", 5, "", 4)
	require.Len(t, got, 4)
	assert.Equal(t, "Science", got[0].Subject)
	assert.Equal(t, "Social", got[1].Subject)
	assert.Equal(t, "Math", got[2].Subject)
	assert.Equal(t, "English", got[3].Subject)
}

func TestRetrieveMinSimilarity(t *testing.T) {
	embedder := &fakeEmbedder{vectors: grade5Vectors(), queryVec: []float32{1, 0, 0}}
	kb := loadedKB(t, embedder)

	got := NewRetriever(kb, 0.6).Retrieve(context.Background(), "ecosystems", 5, "", 4)
	require.Len(t, got, 2)
	assert.Equal(t, "Science", got[0].Subject)
	assert.Equal(t, "Social", got[1].Subject)
}

func TestRetrieveEmptyCandidates(t *testing.T) {
	embedder := &fakeEmbedder{}
	kb := loadedKB(t, embedder)

	assert.Empty(t, NewRetriever(kb, 0).Retrieve(context.Background(), "algebra", 11, types.SUBJECT_MATH, 3))
}

func TestRetrieveBlankQueryKeepsCatalogOrder(t *testing.T) {
	embedder := &fakeEmbedder{queryErr: errors.New("must not be called")}
	kb := loadedKB(t, embedder)

	got := NewRetriever(kb, 0).Retrieve(context.Background(), "   ", 5, "", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Math", got[0].Subject)
	assert.Equal(t, "Science", got[1].Subject)
}

func TestRetrieveEmbeddingFailureFallsBack(t *testing.T) {
	embedder := &fakeEmbedder{}
	kb := loadedKB(t, embedder)
	embedder.queryErr = errors.New("provider down")

	got := NewRetriever(kb, 0).Retrieve(context.Background(), "fractions", 5, "", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Math", got[0].Subject)
}

func TestRetrieveSubjectFilter(t *testing.T) {
	embedder := &fakeEmbedder{}
	kb := loadedKB(t, embedder)

	got := NewRetriever(kb, 0).Retrieve(context.Background(), "", 8, types.SUBJECT_SOCIAL, 3)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].Grade)
	assert.Equal(t, "Social", got[0].Subject)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// degenerate inputs score zero instead of NaN
	assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Zero(t, CosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Zero(t, CosineSimilarity(nil, nil))
}
