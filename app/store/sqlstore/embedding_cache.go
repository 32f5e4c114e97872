package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sahayak-ai/sahayak/app/store"
	"github.com/sahayak-ai/sahayak/pkg/register"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.EmbeddingCacheStore = NewEmbeddingCacheStore(provider)
	})
}

type EmbeddingCacheStore struct {
	CommonFields
}

func NewEmbeddingCacheStore(provider SqlProviderAchieve) *EmbeddingCacheStore {
	repo := &EmbeddingCacheStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_EMBEDDING_CACHE)
	repo.SetAllColumns("catalog", "entry_pos", "model", "embedding", "created_at")
	return repo
}

func (s *EmbeddingCacheStore) BatchUpsert(ctx context.Context, datas []store.EmbeddingCache) error {
	if len(datas) == 0 {
		return nil
	}
	query := sq.Insert(s.GetTable()).
		Columns("catalog", "entry_pos", "model", "embedding", "created_at")

	for _, data := range datas {
		if data.CreatedAt == 0 {
			data.CreatedAt = time.Now().Unix()
		}
		query = query.Values(data.Catalog, data.EntryPos, data.Model, data.Embedding, data.CreatedAt)
	}
	query = query.Suffix("ON CONFLICT (catalog, entry_pos, model) DO UPDATE SET embedding = EXCLUDED.embedding, created_at = EXCLUDED.created_at")

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EmbeddingCacheStore) ListByCatalog(ctx context.Context, catalog, model string) ([]store.EmbeddingCache, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"catalog": catalog, "model": model}).
		OrderBy("entry_pos ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []store.EmbeddingCache
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *EmbeddingCacheStore) DeleteCatalog(ctx context.Context, catalog string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"catalog": catalog})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
