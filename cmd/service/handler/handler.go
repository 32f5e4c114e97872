package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sahayak-ai/sahayak/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
