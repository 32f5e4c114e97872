package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/sahayak-ai/sahayak/app/logic/v1"
	"github.com/sahayak-ai/sahayak/app/response"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type CreateFeedbackRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content" binding:"required"`
}

func (s *HttpSrv) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewFeedbackLogic(c, s.Core).Submit(req.UserID, req.Content); err != nil {
		response.APIError(c, err)
		return
	}

	l := response.InjectResponseLocalizer(c)
	response.APISuccess(c, gin.H{
		"message": l.Get(response.GetLangFromRequestOrDefault(c), i18n.MESSAGE_FEEDBACK_SAVED),
	})
}

type ListFeedbackRequest struct {
	Page     uint64 `form:"page"`
	PageSize uint64 `form:"pagesize"`
}

func (s *HttpSrv) ListFeedback(c *gin.Context) {
	var req ListFeedbackRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewFeedbackLogic(c, s.Core).List(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{"list": list})
}
