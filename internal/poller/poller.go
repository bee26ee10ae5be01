// Package poller waits for an environment to report the expected version in
// the Ready state
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/lattiam/ebwait/internal/config"
	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/internal/output"
	"github.com/lattiam/ebwait/pkg/logging"
)

// Outcome is the result of a readiness run. Success is false when the
// deadline passed before the environment became ready.
type Outcome struct {
	Success       bool
	FinalSnapshot interfaces.EnvironmentSnapshot
	Fetches       int
	Elapsed       time.Duration
}

// Poller repeatedly fetches environment snapshots until the readiness
// predicate holds or the timeout elapses
type Poller struct {
	provider interfaces.StatusProvider
	sink     interfaces.OutputSink
	clock    Clock
	logger   *logging.Logger
}

// Option configures a Poller
type Option func(*Poller)

// WithClock replaces the wall clock, mainly for tests
func WithClock(clock Clock) Option {
	return func(p *Poller) {
		p.clock = clock
	}
}

// WithLogger replaces the component logger
func WithLogger(logger *logging.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}

// New creates a poller reading from provider and reporting to sink
func New(provider interfaces.StatusProvider, sink interfaces.OutputSink, opts ...Option) *Poller {
	p := &Poller{
		provider: provider,
		sink:     sink,
		clock:    realClock{},
		logger:   logging.Poller,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until the environment is ready or cfg.Timeout has elapsed since
// the first fetch. Lookup errors abort immediately and produce no outputs. A
// timeout is not an error; it is reported through Outcome.Success.
//
// The sleep between polls is not interruptible and a hanging fetch is not
// bounded by cfg.Timeout.
func (p *Poller) Run(ctx context.Context, cfg config.PollConfig) (Outcome, error) {
	start := p.clock.Now()

	snapshot, err := p.provider.Fetch(ctx, cfg.EnvironmentName)
	if err != nil {
		return Outcome{}, err
	}
	fetches := 1

	for !p.check(snapshot, cfg.ExpectedVersion) && p.clock.Now().Sub(start) < cfg.Timeout {
		p.logger.Info("Environment %s not ready, checking again in %s", cfg.EnvironmentName, cfg.PollInterval)
		p.clock.Sleep(cfg.PollInterval)

		snapshot, err = p.provider.Fetch(ctx, cfg.EnvironmentName)
		if err != nil {
			return Outcome{}, err
		}
		fetches++
	}

	outcome := Outcome{
		Success:       p.check(snapshot, cfg.ExpectedVersion),
		FinalSnapshot: snapshot,
		Fetches:       fetches,
		Elapsed:       p.clock.Now().Sub(start),
	}

	if err := output.WriteSnapshot(p.sink, snapshot); err != nil {
		return outcome, fmt.Errorf("failed to write outputs: %w", err)
	}

	if outcome.Success {
		p.logger.Success(ctx, "wait_for_environment", fmt.Sprintf("%s ready after %d fetches", cfg.EnvironmentName, fetches))
	} else {
		p.logger.Warn("Timed out after %s waiting for %s: expected version %q but got %q, status %s",
			outcome.Elapsed, cfg.EnvironmentName, cfg.ExpectedVersion, snapshot.VersionLabel, snapshot.Status)
	}
	return outcome, nil
}

// check evaluates the readiness predicate and logs both components
func (p *Poller) check(snapshot interfaces.EnvironmentSnapshot, expectedVersion string) bool {
	eval := Evaluate(snapshot, expectedVersion)
	p.logger.Debug("Checking if %s is ready. Expected version: %q", snapshot, expectedVersion)
	p.logger.Debug("version_ok=%t status_ok=%t", eval.VersionOK, eval.StatusOK)
	return eval.Ready()
}
