package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahayak-ai/sahayak/app/core"
	"github.com/sahayak-ai/sahayak/app/response"
	"github.com/sahayak-ai/sahayak/cmd/service/handler"
	"github.com/sahayak-ai/sahayak/cmd/service/middleware"
	"github.com/sahayak-ai/sahayak/pkg/metrics"
)

func serve(core *core.Core) error {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	return core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(gin.Recovery())

	s.Engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	userLimit := func(operation string) gin.HandlerFunc {
		return middleware.UseLimit(operation, s.Core.Cfg().RateRPS, func(c *gin.Context) string {
			return c.ClientIP()
		})
	}

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/chat", userLimit("chat"), s.Chat)
		apiV1.GET("/chat/history", s.ChatHistory)

		apiV1.POST("/feedback", userLimit("feedback"), s.CreateFeedback)
		apiV1.GET("/feedback/list", s.ListFeedback)

		knowledge := apiV1.Group("/knowledge")
		{
			knowledge.GET("", s.ListKnowledge)
			knowledge.GET("/catalogs", s.ListCatalogs)
			knowledge.GET("/catalogs/:catalog/search", userLimit("catalog_search"), s.SearchCatalog)
		}
	}
}
