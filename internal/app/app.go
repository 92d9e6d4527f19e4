package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"TubeDigest/internal/config"
	"TubeDigest/internal/enrich"
	"TubeDigest/internal/infrastructure/slack"
	"TubeDigest/internal/infrastructure/youtube"
	"TubeDigest/internal/logging"
	"TubeDigest/internal/render"
	"TubeDigest/internal/usecase"
)

// Application wires configuration to the pipeline and its adapters.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := render.NewRegistry()
	registry.Register(render.MinutesRenderer{})
	registry.Register(render.BlocksRenderer{})

	renderer, err := registry.Resolve(cfg.DigestStyle)
	if err != nil {
		return nil, err
	}

	tagger, err := enrich.NewTagger()
	if err != nil {
		return nil, err
	}

	client := youtube.NewClient(cfg.APIBase, cfg.APIKey, nil)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Directory:     client,
		Feed:          client,
		Catalog:       client,
		Notifier:      slack.NewNotifier(cfg.WebhookURL),
		Renderer:      renderer,
		Tagger:        tagger,
		Channels:      cfg.ChannelIDs,
		WindowHours:   cfg.WindowHours,
		MaxPerChannel: cfg.MaxPerChannel,
		Logger:        baseLogger.With("component", "pipeline", "run_id", uuid.NewString()),
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Run performs a single aggregation pass. Scheduling is left to the
// invoking environment (cron, CI); each invocation recomputes its own
// time window.
func (a *Application) Run(ctx context.Context) error {
	return a.pipeline.Run(ctx, time.Now().UTC())
}
