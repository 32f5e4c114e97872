package rag

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/safe"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

const CURRICULUM_CATALOG = "curriculum"

// VectorCache persists catalog embeddings across restarts so startup does
// not re-pay the embedding provider for an unchanged catalog. Both methods
// are best effort, callers degrade to live embedding on any error.
type VectorCache interface {
	Load(ctx context.Context, catalog, model string) (map[int][]float32, error)
	Save(ctx context.Context, catalog, model string, vectors map[int][]float32) error
}

type auxCatalog struct {
	name    string
	entries []types.CatalogEntry
	index   [][]float32
}

// KnowledgeBase holds the curated curriculum plus any auxiliary JSON
// catalogs, each with a position-aligned embedding index. Load builds
// everything once at startup, reads afterwards take no locks.
type KnowledgeBase struct {
	embedder ai.Embedder
	cache    VectorCache
	model    string

	entries []types.KnowledgeEntry
	index   [][]float32
	aux     map[string]*auxCatalog
	loaded  bool
}

type KnowledgeOption func(*KnowledgeBase)

// WithVectorCache enables persistent embedding reuse keyed by catalog,
// entry position and embedding model.
func WithVectorCache(cache VectorCache, model string) KnowledgeOption {
	return func(kb *KnowledgeBase) {
		kb.cache = cache
		kb.model = model
	}
}

func NewKnowledgeBase(embedder ai.Embedder, opts ...KnowledgeOption) *KnowledgeBase {
	kb := &KnowledgeBase{
		embedder: embedder,
		aux:      make(map[string]*auxCatalog),
	}
	for _, opt := range opts {
		opt(kb)
	}
	return kb
}

// Load validates the curated catalog, builds its embedding index and then
// pulls in auxiliary catalogs from knowledgeDir (may be empty). A failure
// on the curated catalog is fatal, a broken auxiliary catalog is skipped
// so one bad file cannot take the service down.
func (kb *KnowledgeBase) Load(ctx context.Context, knowledgeDir string) error {
	entries := make([]types.KnowledgeEntry, 0, len(curriculumCatalog))
	for i, entry := range curriculumCatalog {
		if err := entry.Validate(); err != nil {
			slog.Warn("Skip invalid curriculum entry", slog.Int("pos", i), slog.Any("error", err))
			continue
		}
		entries = append(entries, entry)
	}

	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.EmbeddingText())
	}

	index, err := kb.embedCatalog(ctx, CURRICULUM_CATALOG, texts)
	if err != nil {
		return errors.New("KnowledgeBase.Load.embedCatalog", i18n.ERROR_INTERNAL, err)
	}
	if len(index) != len(entries) {
		return errors.New("KnowledgeBase.Load.indexAlignment", i18n.ERROR_INTERNAL,
			errors.ERROR_EMBEDDING_MISALIGNED)
	}

	kb.entries = entries
	kb.index = index
	kb.loaded = true

	if knowledgeDir != "" {
		kb.loadAuxCatalogs(ctx, knowledgeDir)
	}
	return nil
}

func (kb *KnowledgeBase) loadAuxCatalogs(ctx context.Context, dir string) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		slog.Warn("Scan knowledge dir failed", slog.String("dir", dir), slog.Any("error", err))
		return
	}

	for _, path := range paths {
		safe.RunWithComponent(func() {
			kb.loadAuxCatalog(ctx, path)
		}, "knowledge.catalog")
	}
}

func (kb *KnowledgeBase) loadAuxCatalog(ctx context.Context, path string) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Skip unreadable catalog", slog.String("path", path), slog.Any("error", err))
		return
	}

	var entries []types.CatalogEntry
	if err = json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("Skip malformed catalog", slog.String("path", path), slog.Any("error", err))
		return
	}
	if len(entries) == 0 {
		return
	}

	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.EmbeddingText())
	}
	index, err := kb.embedCatalog(ctx, name, texts)
	if err != nil || len(index) != len(entries) {
		slog.Warn("Skip catalog without embeddings", slog.String("catalog", name), slog.Any("error", err))
		return
	}

	kb.aux[name] = &auxCatalog{name: name, entries: entries, index: index}
	slog.Info("Loaded auxiliary catalog", slog.String("catalog", name), slog.Int("entries", len(entries)))
}

// embedCatalog resolves one vector per text, reusing cached vectors where
// present and embedding only the misses.
func (kb *KnowledgeBase) embedCatalog(ctx context.Context, catalog string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	cached := map[int][]float32{}
	if kb.cache != nil {
		loaded, err := kb.cache.Load(ctx, catalog, kb.model)
		if err != nil {
			slog.Warn("Embedding cache load failed", slog.String("catalog", catalog), slog.Any("error", err))
		} else {
			cached = loaded
		}
	}

	var (
		missing      []string
		missingPos   []int
		index        = make([][]float32, len(texts))
		misalignment bool
	)
	for pos, text := range texts {
		if vec, ok := cached[pos]; ok && len(vec) > 0 {
			index[pos] = vec
			continue
		}
		missing = append(missing, text)
		missingPos = append(missingPos, pos)
	}

	if len(missing) > 0 {
		resp, err := kb.embedder.EmbeddingForDocument(ctx, catalog, missing)
		if err != nil {
			return nil, err
		}
		if len(resp.Data) != len(missing) {
			return nil, errors.ERROR_EMBEDDING_MISALIGNED
		}
		fresh := map[int][]float32{}
		for i, pos := range missingPos {
			index[pos] = resp.Data[i]
			fresh[pos] = resp.Data[i]
		}
		if kb.cache != nil {
			if err = kb.cache.Save(ctx, catalog, kb.model, fresh); err != nil {
				slog.Warn("Embedding cache save failed", slog.String("catalog", catalog), slog.Any("error", err))
			}
		}
	}

	// Cached vectors from a different dimensionality would poison scoring.
	dims := len(index[0])
	for _, vec := range index {
		if len(vec) != dims {
			misalignment = true
			break
		}
	}
	if misalignment {
		return nil, errors.ERROR_EMBEDDING_MISALIGNED
	}
	return index, nil
}

// EntriesFor returns the curated entries matching grade exactly and
// subject loosely, preserving catalog order. Empty subject matches all.
func (kb *KnowledgeBase) EntriesFor(grade int, subject string) []types.KnowledgeEntry {
	var out []types.KnowledgeEntry
	for _, pos := range kb.positionsFor(grade, subject) {
		out = append(out, kb.entries[pos])
	}
	return out
}

func (kb *KnowledgeBase) positionsFor(grade int, subject string) []int {
	var out []int
	for pos, entry := range kb.entries {
		if entry.Grade != grade {
			continue
		}
		if !entry.MatchSubject(subject) {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func (kb *KnowledgeBase) entryAt(pos int) types.KnowledgeEntry {
	return kb.entries[pos]
}

func (kb *KnowledgeBase) vectorAt(pos int) []float32 {
	return kb.index[pos]
}

func (kb *KnowledgeBase) Loaded() bool {
	return kb.loaded
}

func (kb *KnowledgeBase) Catalogs() []string {
	out := make([]string, 0, len(kb.aux))
	for name := range kb.aux {
		out = append(out, name)
	}
	return out
}

// SearchCatalog answers the single closest entry of one auxiliary catalog,
// nil when the catalog is unknown or empty.
func (kb *KnowledgeBase) SearchCatalog(ctx context.Context, catalog, query string) (*types.CatalogEntry, error) {
	aux, ok := kb.aux[catalog]
	if !ok || len(aux.entries) == 0 {
		return nil, nil
	}

	resp, err := kb.embedder.EmbeddingForQuery(ctx, []string{query})
	if err != nil {
		return nil, errors.New("KnowledgeBase.SearchCatalog.EmbeddingForQuery", i18n.ERROR_INTERNAL, err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("KnowledgeBase.SearchCatalog.EmbeddingForQuery", i18n.ERROR_INTERNAL,
			errors.ERROR_EMBEDDING_MISALIGNED)
	}

	best, bestScore := -1, 0.0
	for pos, vec := range aux.index {
		score := CosineSimilarity(resp.Data[0], vec)
		if best == -1 || score > bestScore {
			best, bestScore = pos, score
		}
	}
	entry := aux.entries[best]
	return &entry, nil
}
