package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sahayak-ai/sahayak/app/core/srv"
	"github.com/sahayak-ai/sahayak/pkg/rag"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string       `toml:"addr"`
	Log      Log          `toml:"log"`
	Postgres PGConfig     `toml:"postgres"`
	AI       srv.AIConfig `toml:"ai"`
	RAG      rag.Config   `toml:"rag"`
	RateRPS  float64      `toml:"rate_rps"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("SAHAYAK_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.AI.FromENV()
	if v := os.Getenv("SAHAYAK_RAG_KNOWLEDGE_DIR"); v != "" {
		c.RAG.KnowledgeDir = v
	}
	if v := os.Getenv("SAHAYAK_RATE_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateRPS = rps
		}
	}
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("SAHAYAK_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("SAHAYAK_API_LOG_LEVEL")
	l.Path = os.Getenv("SAHAYAK_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
