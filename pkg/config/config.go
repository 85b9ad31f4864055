package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/nafamubarokhusni/News-Summary/pkg/api"
	"github.com/nafamubarokhusni/News-Summary/pkg/articles"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib/log"
	"github.com/nafamubarokhusni/News-Summary/pkg/llms"
)

type Config struct {
	APIConfig      api.Config      `env:""`
	LogConfig      log.Config      `env:""`
	LLMConfig      llms.Config     `env:""`
	ArticlesConfig articles.Config `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
