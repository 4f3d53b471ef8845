package app

import (
	"io"

	"github.com/charmbracelet/log"
)

// App is the shared context handed to CLI commands.
type App struct {
	Config Config
	Logger *log.Logger
	*Wire
}

// New builds the logger and dependency graph for cfg. Log output goes to
// logOut.
func New(cfg Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	return &App{
		Config: cfg,
		Logger: logger,
		Wire:   NewWire(cfg, logger),
	}, nil
}
