package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sahayak-ai/sahayak/app/core"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/types"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type FeedbackLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewFeedbackLogic(ctx context.Context, core *core.Core) *FeedbackLogic {
	return &FeedbackLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *FeedbackLogic) Submit(userID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("FeedbackLogic.Submit.validate", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusBadRequest)
	}

	data := &types.Feedback{
		ID:        utils.GenUniqIDStr(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err := l.core.Store().FeedbackStore().Create(l.ctx, data); err != nil {
		return errors.New("FeedbackLogic.Submit.FeedbackStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *FeedbackLogic) List(page, pageSize uint64) ([]types.Feedback, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 || pageSize > 100 {
		pageSize = 20
	}
	list, err := l.core.Store().FeedbackStore().List(l.ctx, page, pageSize)
	if err != nil {
		return nil, errors.New("FeedbackLogic.List.FeedbackStore.List", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}
