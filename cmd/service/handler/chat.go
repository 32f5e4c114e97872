package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/sahayak-ai/sahayak/app/logic/v1"
	"github.com/sahayak-ai/sahayak/app/response"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type ChatRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Question string `json:"question" binding:"required"`
	Grade    int    `json:"grade" binding:"required,min=1,max=12"`
	Lang     string `json:"lang"`
}

func (s *HttpSrv) Chat(c *gin.Context) {
	var req ChatRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewChatLogic(c, s.Core).Ask(req.UserID, req.Question, req.Grade, req.Lang)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

type ChatHistoryRequest struct {
	UserID string `form:"user_id" binding:"required"`
	Limit  uint64 `form:"limit"`
}

func (s *HttpSrv) ChatHistory(c *gin.Context) {
	var req ChatHistoryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	history, err := v1.NewChatLogic(c, s.Core).History(req.UserID, req.Limit)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, history)
}
