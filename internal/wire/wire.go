// Package wire provides dependency injection for the scaffolder.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/springscaffold/internal/adapters/cli"
	"github.com/example/springscaffold/internal/adapters/filesystem"
	"github.com/example/springscaffold/internal/adapters/render"
	"github.com/example/springscaffold/internal/adapters/sqlite"
	"github.com/example/springscaffold/internal/app"
	"github.com/example/springscaffold/internal/config"
	"github.com/example/springscaffold/internal/db"
	"github.com/example/springscaffold/internal/logx"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/ports/secondary"
)

// Settings are the per-invocation inputs collected by the CLI.
type Settings struct {
	Config    *config.Config
	OutputDir string
	DryRun    bool
	Journal   bool // record generated artifacts
	Verbose   bool
	Quiet     bool
	LogOutput io.Writer // defaults to stderr
}

var (
	settings        Settings
	logger          *slog.Logger
	scaffoldService primary.ScaffoldService
	historyService  primary.HistoryService
	once            sync.Once
)

// Configure sets the settings used to build the services. It must be called before
// any accessor.
func Configure(s Settings) {
	settings = s
}

// Logger returns the singleton logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() primary.ScaffoldService {
	once.Do(initServices)
	return scaffoldService
}

// HistoryService returns the singleton HistoryService instance, or nil when the output
// directory has no journal.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg := settings.Config
	if cfg == nil {
		cfg = config.Default()
	}
	out := settings.LogOutput
	if out == nil {
		out = os.Stderr
	}
	outputDir := settings.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	logger = logx.New(out, logx.Options{
		Level:  logx.LevelFor(cfg.LogLevel, settings.Verbose, settings.Quiet),
		Format: cfg.LogFormat,
	})

	renderer, err := render.NewRenderer(cfg.TemplateDir, logger)
	if err != nil {
		log.Fatalf("failed to initialize renderer: %v", err)
	}

	// Journal is opt-in; an unavailable journal never blocks generation.
	var journal secondary.JournalRepository
	if _, statErr := os.Stat(db.GetDBPath(outputDir)); settings.Journal || statErr == nil {
		database, err := db.GetDB(outputDir)
		if err != nil {
			logger.Warn("journal unavailable", "error", err)
		} else {
			repo := sqlite.NewJournalRepository(database)
			historyService = app.NewHistoryService(repo)
			if settings.Journal {
				journal = repo
			}
		}
	}

	scaffoldService = app.NewScaffoldService(
		filesystem.NewDetector(cfg.SourceRoot, cfg.FallbackNamespace, logger),
		renderer,
		filesystem.NewMaterializer(cfg.SourceRoot, settings.DryRun, logger),
		journal,
		app.Defaults{
			BasePath:          cfg.BasePath,
			JavaVersion:       cfg.JavaVersion,
			SpringBootVersion: cfg.SpringBootVersion,
			JWTSecret:         cfg.JWTSecret,
		},
		logger,
	)
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ScaffoldAdapter() *cliadapter.ScaffoldAdapter {
	return ScaffoldAdapterWithOutput(os.Stdout)
}

// ScaffoldAdapterWithOutput returns a new ScaffoldAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func ScaffoldAdapterWithOutput(out io.Writer) *cliadapter.ScaffoldAdapter {
	once.Do(initServices)
	return cliadapter.NewScaffoldAdapter(scaffoldService, historyService, out)
}

// Close releases the journal connection, if one was opened.
func Close() error {
	return db.Close()
}
