package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/platform/telemetry"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// NoticeSynced is shown when the remote list replaced the local one.
const NoticeSynced = "Quotes synced with server: remote changes applied."

// SyncState is the current phase of the sync state machine.
type SyncState int32

const (
	SyncIdle SyncState = iota
	SyncFetching
	SyncComparing
	SyncReplacing
	SyncUnchanged
	SyncPushing
)

// String returns the state name.
func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncFetching:
		return "fetching"
	case SyncComparing:
		return "comparing"
	case SyncReplacing:
		return "replacing"
	case SyncUnchanged:
		return "unchanged"
	case SyncPushing:
		return "pushing"
	default:
		return fmt.Sprintf("SyncState(%d)", int32(s))
	}
}

// SyncMetrics records sync cycle outcomes.
type SyncMetrics interface {
	CycleFinished(outcome string, d time.Duration)
	PushFailed()
}

// Report describes one sync cycle.
type Report struct {
	// Conflict is true when the remote list replaced the local one.
	Conflict bool `json:"conflict"`

	// Fetched is the number of remote quotes received.
	Fetched int `json:"fetched"`

	// Pushed is true when the local list was accepted by the remote endpoint.
	Pushed bool `json:"pushed"`

	FetchErr error `json:"-"`
	PushErr  error `json:"-"`

	Duration time.Duration `json:"duration"`

	// Shared is true when the caller joined a cycle already in flight.
	Shared bool `json:"shared"`
}

// Outcome returns the metrics label for the report.
func (r Report) Outcome() string {
	switch {
	case r.FetchErr != nil:
		return telemetry.OutcomeFetchFailed
	case r.Conflict:
		return telemetry.OutcomeReplaced
	default:
		return telemetry.OutcomeUnchanged
	}
}

// Syncer reconciles the local store with the remote endpoint.
// The remote list always wins; the local list is always pushed back.
// Failures are logged and never surfaced to the user.
type Syncer struct {
	store    *QuoteStore
	remote   ports.RemoteQuoteClient
	renderer ports.Renderer
	compare  CompareMode
	metrics  SyncMetrics
	logger   *slog.Logger

	state  atomic.Int32
	flight singleflight.Group
}

// SyncerConfig contains dependencies for the syncer.
type SyncerConfig struct {
	Store    *QuoteStore
	Remote   ports.RemoteQuoteClient
	Renderer ports.Renderer
	Compare  CompareMode
	Metrics  SyncMetrics
	Logger   *slog.Logger
}

// NewSyncer creates a syncer. Panics if Store or Remote is nil.
func NewSyncer(cfg SyncerConfig) *Syncer {
	if cfg.Store == nil {
		panic("app: SyncerConfig.Store is required")
	}

	if cfg.Remote == nil {
		panic("app: SyncerConfig.Remote is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	compare := cfg.Compare
	if compare == "" {
		compare = CompareMultiset
	}

	return &Syncer{
		store:    cfg.Store,
		remote:   cfg.Remote,
		renderer: cfg.Renderer,
		compare:  compare,
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// State returns the current phase.
func (s *Syncer) State() SyncState {
	return SyncState(s.state.Load())
}

func (s *Syncer) setState(st SyncState) {
	s.state.Store(int32(st))
}

// RunOnce performs one sync cycle. A call made while a cycle is in flight
// waits for that cycle and receives its report.
//
// The cycle keeps ctx's values but not its cancellation, so a caller that
// goes away cannot fail the callers that joined it. Each remote call is
// still bounded by the client timeout.
func (s *Syncer) RunOnce(ctx context.Context) Report {
	v, _, shared := s.flight.Do("sync", func() (any, error) {
		return s.cycle(context.WithoutCancel(ctx)), nil
	})

	report, _ := v.(Report)
	report.Shared = shared

	return report
}

func (s *Syncer) cycle(ctx context.Context) Report {
	start := time.Now()

	ctx = logging.WithSyncCycle(logging.WithContext(ctx, s.logger), uuid.NewString())
	logger := logging.FromContext(ctx)

	ctx, span := telemetry.Tracer().Start(ctx, "sync.cycle")
	defer span.End()

	var report Report

	defer func() {
		s.setState(SyncIdle)

		report.Duration = time.Since(start)

		if s.metrics != nil {
			s.metrics.CycleFinished(report.Outcome(), report.Duration)
		}

		span.SetAttributes(telemetry.CycleAttributes(report.Outcome(), report.Fetched, report.Pushed)...)
	}()

	s.setState(SyncFetching)

	remote, err := s.remote.FetchQuotes(ctx)
	if err != nil {
		report.FetchErr = err
		span.SetStatus(codes.Error, err.Error())
		logger.WarnContext(ctx, "sync fetch failed", slog.Any("error", err))

		return report
	}

	report.Fetched = len(remote)

	s.setState(SyncComparing)

	local := s.store.Quotes()

	if SameQuotes(s.compare, local, remote) {
		s.setState(SyncUnchanged)
		logger.DebugContext(ctx, "remote matches local", slog.Int("count", len(local)))
	} else {
		s.setState(SyncReplacing)

		logger.InfoContext(ctx, "remote list wins",
			slog.Any("conflict", domain.NewConflictErrorWithDetails("quotes", "remote differs from local",
				fmt.Sprintf("local=%d remote=%d", len(local), len(remote)))),
		)

		if err := s.store.ReplaceAll(ctx, remote); err != nil {
			logger.ErrorContext(ctx, "applying remote quotes failed", slog.Any("error", err))
		} else {
			report.Conflict = true

			if s.renderer != nil {
				s.renderer.Notify(ctx, ports.NoticeWarning, NoticeSynced)
			}
		}
	}

	s.setState(SyncPushing)

	if err := s.remote.PushQuotes(ctx, s.store.Quotes()); err != nil {
		report.PushErr = err
		logger.WarnContext(ctx, "sync push failed", slog.Any("error", err))

		if s.metrics != nil {
			s.metrics.PushFailed()
		}
	} else {
		report.Pushed = true
	}

	s.refresh(ctx)

	logger.InfoContext(ctx, "sync cycle finished",
		slog.Bool("conflict", report.Conflict),
		slog.Int("fetched", report.Fetched),
		slog.Bool("pushed", report.Pushed),
	)

	return report
}

func (s *Syncer) refresh(ctx context.Context) {
	if s.renderer == nil {
		return
	}

	filtered, err := s.store.Filtered(ctx)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "loading filter for refresh failed", slog.Any("error", err))
		return
	}

	if err := s.renderer.Render(ctx, filtered); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "rendering after sync failed", slog.Any("error", err))
	}
}
