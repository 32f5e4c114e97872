package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/sahayak-ai/sahayak/app/logic/v1"
	"github.com/sahayak-ai/sahayak/app/response"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type ListKnowledgeRequest struct {
	Grade   int    `form:"grade" binding:"omitempty,min=1,max=12"`
	Subject string `form:"subject"`
}

func (s *HttpSrv) ListKnowledge(c *gin.Context) {
	var req ListKnowledgeRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewKnowledgeLogic(c, s.Core).List(req.Grade, req.Subject)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{"list": list})
}

func (s *HttpSrv) ListCatalogs(c *gin.Context) {
	response.APISuccess(c, gin.H{"list": v1.NewKnowledgeLogic(c, s.Core).Catalogs()})
}

type SearchCatalogRequest struct {
	Query string `form:"query" binding:"required"`
}

func (s *HttpSrv) SearchCatalog(c *gin.Context) {
	var req SearchCatalogRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	catalog, _ := c.Params.Get("catalog")
	entry, err := v1.NewKnowledgeLogic(c, s.Core).SearchCatalog(catalog, req.Query)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}
