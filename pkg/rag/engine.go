package rag

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/types"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type Config struct {
	TopK               int           `toml:"top_k"`
	HistoryLimit       uint64        `toml:"history_limit"`
	PromptHistory      int           `toml:"prompt_history"`
	MinSimilarity      float64       `toml:"min_similarity"`
	GenerateTimeout    time.Duration `toml:"-"`
	GenerateTimeoutSec int           `toml:"generate_timeout_second"`
	HistoryTokenBudget int           `toml:"history_token_budget"`
	KnowledgeDir       string        `toml:"knowledge_dir"`
}

func (c *Config) ApplyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = 10
	}
	if c.PromptHistory <= 0 {
		c.PromptHistory = 5
	}
	if c.GenerateTimeout == 0 {
		if c.GenerateTimeoutSec > 0 {
			c.GenerateTimeout = time.Duration(c.GenerateTimeoutSec) * time.Second
		} else {
			c.GenerateTimeout = 30 * time.Second
		}
	}
}

// Query is one educational question from one student.
type Query struct {
	UserID   string
	Question string
	Grade    int
	Lang     string
}

// Result is the engine's answer plus the retrieval facts about how it was
// produced, useful for API responses and logging.
type Result struct {
	Answer    string             `json:"answer"`
	Subject   types.SubjectLabel `json:"subject"`
	Grounded  int                `json:"grounded"`
	ChatModel string             `json:"chat_model,omitempty"`
}

// Engine orchestrates one question end to end: validate, infer subject,
// retrieve, assemble prompt, generate once under a deadline, remember.
type Engine struct {
	kb        *KnowledgeBase
	retriever *Retriever
	memory    *Memory
	generator ai.Generator
	chatModel string
	cfg       Config
}

func NewEngine(kb *KnowledgeBase, memory *Memory, generator ai.Generator, chatModel string, cfg Config) *Engine {
	cfg.ApplyDefaults()
	return &Engine{
		kb:        kb,
		retriever: NewRetriever(kb, cfg.MinSimilarity),
		memory:    memory,
		generator: generator,
		chatModel: chatModel,
		cfg:       cfg,
	}
}

func (e *Engine) KnowledgeBase() *KnowledgeBase {
	return e.kb
}

// ProcessEducationalQuery answers one question. Invalid input returns a
// 400-coded error, a broken engine a 500-coded one. Generation failures do
// not error, they degrade to a localized apology so the student always
// gets a readable answer, and failed exchanges are never remembered.
func (e *Engine) ProcessEducationalQuery(ctx context.Context, query Query) (Result, error) {
	question := strings.TrimSpace(query.Question)
	if question == "" || query.Grade < types.GRADE_MIN || query.Grade > types.GRADE_MAX {
		return Result{}, errors.New("Engine.ProcessEducationalQuery.validate", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusBadRequest)
	}
	if !e.kb.Loaded() {
		return Result{}, errors.New("Engine.ProcessEducationalQuery.catalog", i18n.ERROR_INTERNAL,
			errors.ERROR_CATALOG_NOT_LOADED)
	}

	lang := query.Lang
	if !i18n.ALLOW_LANG[lang] {
		lang = utils.DetectResponseLang(question)
	}

	subject := InferSubject(question)
	entries := e.retriever.Retrieve(ctx, question, query.Grade, subject, e.cfg.TopK)

	history := e.memory.LoadRecent(ctx, query.UserID, e.cfg.HistoryLimit)
	promptHistory := TrimHistory(history, e.cfg.PromptHistory, e.cfg.HistoryTokenBudget, e.chatModel)
	prompt := RenderPrompt(query.Grade, promptHistory, FormatGrounding(entries), question)

	result := Result{Subject: subject, Grounded: len(entries)}

	gctx, cancel := context.WithTimeout(ctx, e.cfg.GenerateTimeout)
	defer cancel()

	resp, err := e.generator.Generate(gctx, ai.GenerateRequest{Prompt: prompt})
	if err != nil {
		apologyID := i18n.MESSAGE_APOLOGY_TRANSPORT
		if errors.Is(err, context.DeadlineExceeded) {
			apologyID = i18n.MESSAGE_APOLOGY_TIMEOUT
		}
		slog.Error("Answer generation failed",
			slog.String("user_id", query.UserID),
			slog.String("subject", subject.String()),
			slog.Any("error", err))
		result.Answer = i18n.Default().Get(lang, apologyID)
		return result, nil
	}

	result.Answer = resp.Received
	result.ChatModel = resp.Model

	e.memory.AppendTurn(ctx, query.UserID, types.USER_ROLE_USER, question, query.Grade)
	e.memory.AppendTurn(ctx, query.UserID, types.USER_ROLE_MODEL, resp.Received, query.Grade)
	return result, nil
}
