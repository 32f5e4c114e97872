package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/sahayak-ai/sahayak/app/core"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/rag"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core) *KnowledgeLogic {
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
	}
}

// List returns curriculum chapters, the whole catalog when grade is zero.
func (l *KnowledgeLogic) List(grade int, subject string) ([]types.KnowledgeEntry, error) {
	if grade == 0 {
		return rag.Curriculum(), nil
	}
	if grade < types.GRADE_MIN || grade > types.GRADE_MAX {
		return nil, errors.New("KnowledgeLogic.List.validate", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusBadRequest)
	}
	return l.core.Engine().KnowledgeBase().EntriesFor(grade, subject), nil
}

func (l *KnowledgeLogic) Catalogs() []string {
	return l.core.Engine().KnowledgeBase().Catalogs()
}

// SearchCatalog answers the closest entry of one auxiliary catalog.
func (l *KnowledgeLogic) SearchCatalog(catalog, query string) (*types.CatalogEntry, error) {
	if strings.TrimSpace(query) == "" || catalog == "" {
		return nil, errors.New("KnowledgeLogic.SearchCatalog.validate", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusBadRequest)
	}
	entry, err := l.core.Engine().KnowledgeBase().SearchCatalog(l.ctx, catalog, query)
	if err != nil {
		return nil, errors.Trace("KnowledgeLogic.SearchCatalog", err)
	}
	if entry == nil {
		return nil, errors.New("KnowledgeLogic.SearchCatalog.notfound", i18n.ERROR_NOT_FOUND, nil).
			Code(http.StatusNotFound)
	}
	return entry, nil
}
