package cmd

import (
	"fmt"

	"github.com/cwel/waybarctl/internal/config"
	"github.com/cwel/waybarctl/internal/logging"
	"github.com/cwel/waybarctl/internal/nav"
)

// env holds everything a command needs after startup wiring.
type env struct {
	paths *config.Paths
	cfg   *config.Config
	ctl   *nav.Controller
}

// setup sources the environment files, builds the path set, loads the
// config and initializes logging. Called at the top of every RunE.
func setup() (*env, error) {
	// First pass picks up the env file locations; sourcing may change
	// XDG variables, so paths are rebuilt afterwards.
	config.SourceEnvFiles(config.DefaultPaths().EnvFiles...)
	paths := config.DefaultPaths()

	cfg, err := config.LoadConfig(paths.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.Options{File: paths.LogFile, Verbose: verbose})

	return &env{
		paths: paths,
		cfg:   cfg,
		ctl:   nav.New(paths, cfg),
	}, nil
}
