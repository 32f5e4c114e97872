package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sahayak-ai/sahayak/pkg/register"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.FeedbackStore = NewFeedbackStore(provider)
	})
}

type FeedbackStore struct {
	CommonFields
}

func NewFeedbackStore(provider SqlProviderAchieve) *FeedbackStore {
	repo := &FeedbackStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_FEEDBACK)
	repo.SetAllColumns("id", "user_id", "content", "created_at")
	return repo
}

func (s *FeedbackStore) Create(ctx context.Context, data *types.Feedback) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "content", "created_at").
		Values(data.ID, data.UserID, data.Content, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *FeedbackStore) List(ctx context.Context, page, pageSize uint64) ([]types.Feedback, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		OrderBy("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.Feedback
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}
