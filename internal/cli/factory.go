package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/coerce"
	"github.com/aretw0/coerce/internal/logging"
	"github.com/aretw0/coerce/pkg/adapters/file"
	"github.com/aretw0/coerce/pkg/adapters/redis"
	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/observability"
	"github.com/aretw0/coerce/pkg/schema"
)

// LoadSource builds the schema registry from the configured sources.
// Definitions from Redis override those of the schema file.
func LoadSource(ctx context.Context, opts Options) (*schema.Registry, error) {
	reg := schema.NewRegistry()

	if opts.SchemaFile != "" {
		loaded, err := file.Load(opts.SchemaFile)
		if err != nil {
			return nil, err
		}
		reg = loaded
	}

	if opts.RedisURL != "" {
		store, err := openStore(opts)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		remote, err := store.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(reg, remote)
	}

	return reg, nil
}

func openStore(opts Options) (*redis.Store, error) {
	var storeOpts []redis.Option
	if opts.RedisPrefix != "" {
		storeOpts = append(storeOpts, redis.WithPrefix(opts.RedisPrefix))
	}
	return redis.NewFromURL(opts.RedisURL, storeOpts...)
}

func merge(dst, src *schema.Registry) {
	for id, form := range src.Schema() {
		_ = dst.Define(id, form)
	}
	for id, parent := range src.Parents() {
		dst.DefineParent(id, parent)
	}
}

// NewCoercer initializes a Coercer with standard CLI conventions.
func NewCoercer(ctx context.Context, opts Options, logger *slog.Logger, metrics *observability.Metrics) (*coerce.Coercer, error) {
	source, err := LoadSource(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}

	var hooks []domain.Hooks
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}

	coerceOpts := []coerce.Option{coerce.WithLogger(logger)}
	if len(hooks) > 0 {
		coerceOpts = append(coerceOpts, coerce.WithHooks(observability.ChainHooks(hooks...)))
	}
	return coerce.New(source, coerceOpts...), nil
}

// CreateLogger configures the application logger from the flags.
// Without --debug or --log-level nothing is logged.
func CreateLogger(opts Options) (*slog.Logger, error) {
	if opts.Debug {
		return logging.New(slog.LevelDebug), nil
	}
	if opts.LogLevel == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnResolve: func(e *domain.ResolveEvent) {
			logger.Debug("Resolve", "schema", e.ID.String(), "source", string(e.Source))
		},
		OnFailure: func(e *domain.FailureEvent) {
			logger.Debug("Failure", "type", string(e.Type), "schema", e.ID.String(), "target", e.Target, "error", e.Err)
		},
	}
}
