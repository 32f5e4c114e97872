package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/sahayak-ai/sahayak/app/core"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/rag"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

// Ask runs one educational question through the query engine and records
// per-subject latency and grounding depth.
func (l *ChatLogic) Ask(userID, question string, grade int, lang string) (rag.Result, error) {
	start := time.Now()

	result, err := l.core.Engine().ProcessEducationalQuery(l.ctx, rag.Query{
		UserID:   userID,
		Question: question,
		Grade:    grade,
		Lang:     lang,
	})
	if err != nil {
		return rag.Result{}, errors.Trace("ChatLogic.Ask", err)
	}

	l.core.Metrics().QueryTimeObserve(result.Subject.String(), time.Since(start))
	l.core.Metrics().RetrievalGroundingObserve(result.Subject.String(), result.Grounded)
	return result, nil
}

type ChatHistory struct {
	List  []types.ConversationMessage `json:"list"`
	Total int64                       `json:"total"`
}

// History returns the newest turns of one user thread, oldest first.
func (l *ChatLogic) History(userID string, limit uint64) (ChatHistory, error) {
	if userID == "" {
		return ChatHistory{}, errors.New("ChatLogic.History.validate", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusBadRequest)
	}
	if limit == 0 || limit > 100 {
		limit = 20
	}

	store := l.core.Store().ConversationMessageStore()
	list, err := store.ListRecent(l.ctx, userID, limit)
	if err != nil {
		return ChatHistory{}, errors.New("ChatLogic.History.ListRecent", i18n.ERROR_INTERNAL, err)
	}
	total, err := store.Total(l.ctx, userID)
	if err != nil {
		return ChatHistory{}, errors.New("ChatLogic.History.Total", i18n.ERROR_INTERNAL, err)
	}
	return ChatHistory{List: list, Total: total}, nil
}
