package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Use case names reported to observers.
const (
	UseCaseIngest         = "ingest"
	UseCaseCreateActivity = "create-activity"
	UseCaseUpdateActivity = "update-activity"
	UseCaseDeleteActivity = "delete-activity"
	UseCaseDeleteLog      = "delete-log"
	UseCaseRebuild        = "rebuild-streaks"
	UseCaseUpdateSettings = "update-settings"
	UseCaseImport         = "import"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type zapUseCaseObserver struct {
	logger *zap.Logger
}

// NewZapUseCaseObserver logs use-case events: successes at info, failures
// at error.
func NewZapUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &zapUseCaseObserver{logger: logger.Named("service")}
}

func (o *zapUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		o.logger.Error("service_use_case", append(fields, zap.Error(event.Err))...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

// useCaseObservers fans one event out to every non-nil observer.
type useCaseObservers []UseCaseObserver

func (os useCaseObservers) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range os {
		if o != nil {
			o.ObserveUseCase(ctx, event)
		}
	}
}

func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var out useCaseObservers
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return NoopUseCaseObserver{}
	}
	return out
}

// track reports a use case when the returned func is deferred with the
// final error.
func track(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any) func(err error) {
	start := time.Now()
	return func(err error) {
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: start,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
