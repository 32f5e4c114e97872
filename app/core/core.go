package core

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sahayak-ai/sahayak/app/core/srv"
	"github.com/sahayak-ai/sahayak/app/store/sqlstore"
	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/rag"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	engine *rag.Engine

	stores     func() *sqlstore.Provider
	httpEngine *gin.Engine

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	cfg.RAG.ApplyDefaults()
	utils.SetupIDWorker(1)

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("sahayak", "core"),
		httpEngine: gin.New(),
	}

	setupSqlStore(core)

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI))

	setupRAGEngine(core)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
}

// setupRAGEngine builds the knowledge base index and the query engine.
// The catalog must embed successfully before the service may serve, a
// half-indexed catalog would answer with silently wrong grounding.
func setupRAGEngine(core *Core) {
	aiSrv := core.srv.AI()

	kb := rag.NewKnowledgeBase(aiSrv,
		rag.WithVectorCache(&storeVectorCache{stores: core.stores}, aiSrv.EmbeddingModel()))
	if err := kb.Load(context.Background(), core.cfg.RAG.KnowledgeDir); err != nil {
		panic(err)
	}

	memory := rag.NewMemory(core.Store().ConversationMessageStore())
	generator := &meteredGenerator{
		inner:   aiSrv,
		metrics: core.metrics,
		driver:  aiSrv.DriverName(),
	}
	core.engine = rag.NewEngine(kb, memory, generator, aiSrv.ChatModel(), core.cfg.RAG)
}

// meteredGenerator wraps the configured driver with latency and failure
// metrics without leaking prometheus into the engine.
type meteredGenerator struct {
	inner   ai.Generator
	metrics *Metrics
	driver  string
}

func (g *meteredGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	timer := g.metrics.GenerationTimer(g.driver)
	defer timer.ObserveDuration()

	resp, err := g.inner.Generate(ctx, req)
	if err != nil {
		kind := "transport"
		if errors.Is(err, context.DeadlineExceeded) {
			kind = "timeout"
		}
		g.metrics.GenerationErrorInc(kind)
	}
	return resp, err
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Engine() *rag.Engine {
	return s.engine
}
