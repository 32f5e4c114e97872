package core

import (
	"context"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/sahayak-ai/sahayak/app/store"
	"github.com/sahayak-ai/sahayak/app/store/sqlstore"
)

// storeVectorCache adapts the sql embedding cache to the knowledge base
// cache seam.
type storeVectorCache struct {
	stores func() *sqlstore.Provider
}

func (c *storeVectorCache) Load(ctx context.Context, catalog, model string) (map[int][]float32, error) {
	list, err := c.stores().EmbeddingCacheStore().ListByCatalog(ctx, catalog, model)
	if err != nil {
		return nil, err
	}
	out := make(map[int][]float32, len(list))
	for _, item := range list {
		out[item.EntryPos] = item.Embedding.Slice()
	}
	return out, nil
}

func (c *storeVectorCache) Save(ctx context.Context, catalog, model string, vectors map[int][]float32) error {
	datas := make([]store.EmbeddingCache, 0, len(vectors))
	now := time.Now().Unix()
	for pos, vec := range vectors {
		datas = append(datas, store.EmbeddingCache{
			Catalog:   catalog,
			EntryPos:  pos,
			Model:     model,
			Embedding: pgvector.NewVector(vec),
			CreatedAt: now,
		})
	}
	return c.stores().EmbeddingCacheStore().BatchUpsert(ctx, datas)
}
