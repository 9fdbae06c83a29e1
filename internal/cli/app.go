// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/repository"
	"github.com/bnema/keyedit/internal/infrastructure/config"
	"github.com/bnema/keyedit/internal/infrastructure/gtkaccel"
	"github.com/bnema/keyedit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/keyedit/internal/infrastructure/tkengine"
	"github.com/bnema/keyedit/internal/logging"
)

// Options are the root command flags that affect app construction.
type Options struct {
	ConfigFile string
	LogLevel   string
	Platform   string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Platform      entity.Platform
	Validator     port.HostBindingValidator
	Keybindings   *config.KeybindingsGateway
	History       repository.BindingHistoryRepository

	// Use cases
	GetKeysetUC     *usecase.GetKeysetUseCase
	ListKeysetsUC   *usecase.ListKeysetsUseCase
	SetKeybindingUC *usecase.SetKeybindingUseCase
	CheckSequenceUC *usecase.CheckSequenceUseCase
	VerifyKeysetUC  *usecase.VerifyKeysetUseCase
	ListHistoryUC   *usecase.ListHistoryUseCase

	db         port.DatabaseProvider
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and wires every dependency.
func NewApp(opts Options) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup := newLogger(cfg, opts.LogLevel)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	platform := entity.CurrentPlatform()
	switch {
	case opts.Platform != "":
		platform = entity.ParsePlatform(opts.Platform)
	case cfg.Editor.Platform != "":
		platform = entity.ParsePlatform(cfg.Editor.Platform)
	}

	validator, err := newValidator(cfg.Editor.Engine, platform)
	if err != nil {
		logCleanup()
		return nil, err
	}

	gateway := config.NewKeybindingsGateway(mgr)

	var (
		db      port.DatabaseProvider
		history repository.BindingHistoryRepository
	)
	if !cfg.Database.DisableHistory {
		db = sqlite.NewLazyDB(cfg.Database.Path)
		history = sqlite.NewBindingHistoryRepository(db)
	}

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("platform", string(platform)).
		Str("engine", string(cfg.Editor.Engine)).
		Bool("history", history != nil).
		Msg("app initialized")

	return &App{
		Config:          cfg,
		ConfigManager:   mgr,
		Theme:           styles.NewTheme(cfg),
		Platform:        platform,
		Validator:       validator,
		Keybindings:     gateway,
		History:         history,
		GetKeysetUC:     usecase.NewGetKeysetUseCase(gateway),
		ListKeysetsUC:   usecase.NewListKeysetsUseCase(gateway),
		SetKeybindingUC: usecase.NewSetKeybindingUseCase(gateway, gateway, history),
		CheckSequenceUC: usecase.NewCheckSequenceUseCase(gateway, validator),
		VerifyKeysetUC:  usecase.NewVerifyKeysetUseCase(gateway, validator, cfg.Editor.VerifyConcurrency),
		ListHistoryUC:   usecase.NewListHistoryUseCase(history),
		db:              db,
		ctx:             ctx,
		logCleanup:      logCleanup,
	}, nil
}

// EditorOptions returns the options every editor opened by the CLI gets.
func (a *App) EditorOptions() []usecase.EditorOption {
	return []usecase.EditorOption{
		usecase.WithPlatform(a.Platform),
		usecase.WithHostValidator(a.Validator),
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func newConfigManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerWithFile(path)
	}
	return config.NewManager()
}

// newLogger logs to the rotated file when enabled. Otherwise it logs to
// stderr, at warn level unless a level was asked for explicitly, so the TUI
// is not drawn over.
func newLogger(cfg *config.Config, flagLevel string) (zerolog.Logger, func()) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	explicit := os.Getenv("KEYEDIT_LOG_LEVEL") != "" || flagLevel != ""
	logging.ApplyEnv(&logCfg)
	if flagLevel != "" {
		logCfg.Level = logging.ParseLevel(flagLevel)
	}

	if cfg.Logging.EnableFileLog {
		logger, cleanup, err := newFileLogger(cfg.Logging, logCfg)
		if err == nil {
			return logger, cleanup
		}
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}

	if !explicit && logCfg.Level < zerolog.WarnLevel {
		logCfg.Level = zerolog.WarnLevel
	}
	return logging.New(logCfg), func() {}
}

func newFileLogger(lc config.LoggingConfig, logCfg logging.Config) (zerolog.Logger, func(), error) {
	dir := lc.LogDir
	if dir == "" {
		var err error
		if dir, err = config.GetLogDir(); err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("resolve log directory: %w", err)
		}
	}
	return logging.NewWithFile(logging.FileConfig{
		Config: logCfg,
		RotateConfig: logging.RotateConfig{
			Dir:        dir,
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAge,
			Compress:   lc.Compress,
		},
	})
}

func newValidator(engine config.EngineKind, platform entity.Platform) (port.HostBindingValidator, error) {
	if engine == config.EngineGTK {
		v, err := gtkaccel.New(platform)
		if err != nil {
			return nil, fmt.Errorf("gtk binding engine: %w", err)
		}
		return v, nil
	}
	return tkengine.New(platform), nil
}
