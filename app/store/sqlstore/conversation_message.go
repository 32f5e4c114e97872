package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/sahayak-ai/sahayak/pkg/register"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.ConversationMessageStore = NewConversationMessageStore(provider)
	})
}

type ConversationMessageStore struct {
	CommonFields
}

func NewConversationMessageStore(provider SqlProviderAchieve) *ConversationMessageStore {
	repo := &ConversationMessageStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CONVERSATION_MESSAGE)
	repo.SetAllColumns("id", "user_id", "role", "message", "grade", "send_time")
	return repo
}

func (s *ConversationMessageStore) Create(ctx context.Context, data *types.ConversationMessage) error {
	if data.SendTime == 0 {
		data.SendTime = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "role", "message", "grade", "send_time").
		Values(data.ID, data.UserID, data.Role, data.Message, data.Grade, data.SendTime)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListRecent loads the limit newest turns of one user thread and flips
// them back into chronological order, oldest first, the order prompts use.
func (s *ConversationMessageStore) ListRecent(ctx context.Context, userID string, limit uint64) ([]types.ConversationMessage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("send_time DESC", "id DESC").
		Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.ConversationMessage
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return lo.Reverse(list), nil
}

func (s *ConversationMessageStore) Total(ctx context.Context, userID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
