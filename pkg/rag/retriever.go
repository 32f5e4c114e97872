package rag

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/sahayak-ai/sahayak/pkg/types"
)

// Retriever scores curated entries against a query embedding. It only ever
// reranks the grade and subject filtered candidate set, never the whole
// catalog.
type Retriever struct {
	kb            *KnowledgeBase
	minSimilarity float64
}

// NewRetriever builds a retriever over kb. minSimilarity below or equal to
// zero disables the score floor.
func NewRetriever(kb *KnowledgeBase, minSimilarity float64) *Retriever {
	return &Retriever{kb: kb, minSimilarity: minSimilarity}
}

type scoredEntry struct {
	pos   int
	score float64
}

// Retrieve returns up to topK entries for the query, best first. Rules:
// an empty candidate set yields an empty result without touching the
// embedder, a blank query yields the candidate head in catalog order, and
// an embedding failure degrades to the same catalog-order head so one
// provider hiccup never fails the whole question.
func (r *Retriever) Retrieve(ctx context.Context, query string, grade int, subject types.SubjectLabel, topK int) []types.KnowledgeEntry {
	positions := r.kb.positionsFor(grade, subject.String())
	if len(positions) == 0 || topK <= 0 {
		return nil
	}

	if strings.TrimSpace(query) == "" {
		return r.head(positions, topK)
	}

	resp, err := r.kb.embedder.EmbeddingForQuery(ctx, []string{query})
	if err != nil || len(resp.Data) == 0 {
		slog.Warn("Query embedding failed, fall back to catalog order",
			slog.Int("grade", grade), slog.String("subject", subject.String()), slog.Any("error", err))
		return r.head(positions, topK)
	}
	queryVec := resp.Data[0]

	scored := make([]scoredEntry, 0, len(positions))
	for _, pos := range positions {
		score := CosineSimilarity(queryVec, r.kb.vectorAt(pos))
		if r.minSimilarity > 0 && score < r.minSimilarity {
			continue
		}
		scored = append(scored, scoredEntry{pos: pos, score: score})
	}

	// Stable keeps catalog order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	out := make([]types.KnowledgeEntry, 0, len(scored))
	for _, s := range scored {
		out = append(out, r.kb.entryAt(s.pos))
	}
	return out
}

func (r *Retriever) head(positions []int, topK int) []types.KnowledgeEntry {
	if len(positions) > topK {
		positions = positions[:topK]
	}
	out := make([]types.KnowledgeEntry, 0, len(positions))
	for _, pos := range positions {
		out = append(out, r.kb.entryAt(pos))
	}
	return out
}

// CosineSimilarity over float32 vectors. Zero-norm or mismatched vectors
// score zero instead of NaN.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
