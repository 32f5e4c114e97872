package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/sahayak-ai/sahayak/pkg/sqlstore"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

// ConversationMessageStore persists per-user conversation turns. The
// engine treats the store as best effort, callers degrade to stateless
// operation when it is unreachable.
type ConversationMessageStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data *types.ConversationMessage) error
	// ListRecent returns up to limit most recent turns for userID in
	// chronological order, oldest first.
	ListRecent(ctx context.Context, userID string, limit uint64) ([]types.ConversationMessage, error)
	Total(ctx context.Context, userID string) (int64, error)
}

type FeedbackStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data *types.Feedback) error
	List(ctx context.Context, page, pageSize uint64) ([]types.Feedback, error)
}

// EmbeddingCache is one persisted catalog vector, keyed by the catalog
// name, the entry position within it and the embedding model version.
type EmbeddingCache struct {
	Catalog   string          `db:"catalog"`
	EntryPos  int             `db:"entry_pos"`
	Model     string          `db:"model"`
	Embedding pgvector.Vector `db:"embedding"`
	CreatedAt int64           `db:"created_at"`
}

// EmbeddingCacheStore spares the startup re-embedding of static catalogs.
// It is an optimization only, loaders must tolerate its absence.
type EmbeddingCacheStore interface {
	sqlstore.SqlCommons
	BatchUpsert(ctx context.Context, datas []EmbeddingCache) error
	ListByCatalog(ctx context.Context, catalog, model string) ([]EmbeddingCache, error)
	DeleteCatalog(ctx context.Context, catalog string) error
}
