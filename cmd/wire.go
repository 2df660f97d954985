package cmd

import (
	"fmt"
	"net/http"
	"os"

	tasksrender "github.com/bnema/todo/internal/adapters/render/tasks"
	"github.com/bnema/todo/internal/adapters/transport/httpclient"
	"github.com/bnema/todo/internal/config"
	"github.com/bnema/todo/internal/domain"
	"github.com/spf13/viper"
)

type app struct {
	v            *viper.Viper
	configFile   string
	taskRenderer func([]domain.Task, tasksrender.RenderOptions) (string, error)
}

func wireApp() *app {
	return &app{
		v:            config.New(viper.New()),
		taskRenderer: tasksrender.Render,
	}
}

// loadConfig runs after flag parsing so bound flags take effect.
func (a *app) loadConfig() (config.Config, error) {
	if a.configFile != "" {
		if _, err := os.Stat(a.configFile); err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		a.v.SetConfigFile(a.configFile)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (a *app) taskClient(cfg config.Config) *httpclient.Client {
	return httpclient.New(cfg.Client.BaseURL, &http.Client{Timeout: cfg.Client.Timeout})
}
