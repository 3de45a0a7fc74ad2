// Package amazer runs the generation pipeline: one generator followed by the
// configured modifiers in order.
package amazer

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/telemetry"
)

// Result is the output of one pipeline run.
type Result struct {
	Area    *core.Area
	Config  config.AreaConfig // Seed is always resolved
	Elapsed time.Duration
}

// Amazer generates areas from a config.
type Amazer struct {
	cfg    config.AreaConfig
	logger *log.Logger
	tracer trace.Tracer
}

// Option customises an Amazer.
type Option func(*Amazer)

// WithLogger sets the logger used for step logging.
func WithLogger(l *log.Logger) Option {
	return func(a *Amazer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTracer sets the tracer used for pipeline spans.
func WithTracer(t trace.Tracer) Option {
	return func(a *Amazer) {
		if t != nil {
			a.tracer = t
		}
	}
}

// New creates a pipeline for cfg. A missing generator is replaced by the
// default one; the config is otherwise used as given.
func New(cfg config.AreaConfig, opts ...Option) *Amazer {
	a := &Amazer{
		cfg:    cfg.WithDefaults(),
		logger: log.New(io.Discard),
		tracer: telemetry.Tracer("pipeline"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the config the pipeline runs with.
func (a *Amazer) Config() config.AreaConfig {
	return a.cfg
}

// Generate runs the pipeline. A zero seed is replaced with one derived from
// the clock and reported back in Result.Config.
func (a *Amazer) Generate(ctx context.Context) (*Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	cfg := a.cfg
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	rng := core.NewRand(cfg.Seed)

	ctx, span := a.tracer.Start(ctx, "amazer.generate", trace.WithAttributes(
		attribute.String("area.size", cfg.Size.String()),
		attribute.String("area.generator", cfg.Generator.Name),
		attribute.Int64("area.seed", cfg.Seed),
		attribute.Int("area.modifiers", len(cfg.Modifiers)),
	))
	defer span.End()

	start := time.Now()
	area, err := a.runGenerator(ctx, cfg, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for i, m := range cfg.Modifiers {
		area, err = a.runModifier(ctx, m, area, rng)
		if err != nil {
			err = fmt.Errorf("amazer: modifier %d (%s): %w", i+1, m.Name, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	elapsed := time.Since(start)
	floors := area.Count(core.IsPassable)
	span.SetAttributes(attribute.Int("area.floor_count", floors))
	a.logger.Debug("area generated",
		"size", area.Size(),
		"generator", cfg.Generator.Name,
		"seed", cfg.Seed,
		"floors", floors,
		"elapsed", elapsed,
	)

	return &Result{Area: area, Config: cfg, Elapsed: elapsed}, nil
}

func (a *Amazer) runGenerator(ctx context.Context, cfg config.AreaConfig, rng *rand.Rand) (*core.Area, error) {
	_, span := a.tracer.Start(ctx, "generator."+cfg.Generator.Name)
	defer span.End()

	start := time.Now()
	area, err := cfg.Generator.Value.Generate(cfg.Size, rng)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("amazer: generator %s: %w", cfg.Generator.Name, err)
	}
	span.SetAttributes(attribute.Int("area.floor_count", area.Count(core.IsPassable)))
	a.logger.Debug("generator done",
		"generator", cfg.Generator,
		"size", cfg.Size,
		"elapsed", time.Since(start),
	)
	return area, nil
}

func (a *Amazer) runModifier(ctx context.Context, m config.ModifierSpec, area *core.Area, rng *rand.Rand) (*core.Area, error) {
	_, span := a.tracer.Start(ctx, "modifier."+m.Name)
	defer span.End()

	start := time.Now()
	out, err := m.Value.Apply(area, rng)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("area.size", out.Size().String()),
		attribute.Int("area.floor_count", out.Count(core.IsPassable)),
	)
	a.logger.Debug("modifier done",
		"modifier", m,
		"size", out.Size(),
		"elapsed", time.Since(start),
	)
	return out, nil
}
