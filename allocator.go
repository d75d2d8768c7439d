package assign

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Brannonj96/RandomizeProjectMembers/internal/engine"
	"github.com/Brannonj96/RandomizeProjectMembers/internal/hash"
	"github.com/Brannonj96/RandomizeProjectMembers/internal/logging"
	"github.com/Brannonj96/RandomizeProjectMembers/internal/metrics"
	"github.com/Brannonj96/RandomizeProjectMembers/internal/prefs"
	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// Allocator runs the full assignment pipeline: load input, validate, decode
// preferences, place every member under the size ceiling, then rebalance to
// the minimum size.
//
// An Allocator holds no state between runs; Run is a pure function of the
// source contents and the random source, and may be called repeatedly.
type Allocator struct {
	cfg     Config
	src     types.RosterSource
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	rnd     types.Rand
}

// NewAllocator creates an Allocator.
//
// Parameters:
//   - cfg: Configuration (validated here; nil is rejected)
//   - src: Roster source supplying projects and submissions
//   - opts: Optional dependencies (logger, metrics, hooks, random source)
//
// Returns:
//   - *Allocator: Ready-to-run allocator
//   - error: ErrInvalidConfig or ErrRosterSourceRequired
func NewAllocator(cfg *Config, src types.RosterSource, opts ...Option) (*Allocator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrRosterSourceRequired
	}

	options := &allocatorOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Allocator{
		cfg:     *cfg,
		src:     src,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   options.hooks,
		rnd:     options.rnd,
	}, nil
}

// Run executes one allocation and returns the final roster.
//
// The pipeline is strictly sequential and single-threaded: input loading and
// validation happen eagerly, before any randomized work; placement and
// rebalancing then execute to completion or to a fatal failure. On any error
// no roster is returned; partial assignments are never published.
//
// Parameters:
//   - ctx: Context passed to the roster source (the algorithm itself does
//     not block)
//
// Returns:
//   - *types.Roster: Final assignment, one ordered group per project
//   - error: One of the sentinel error kinds, wrapped with detail
func (a *Allocator) Run(ctx context.Context) (*types.Roster, error) {
	start := time.Now()
	roster, err := a.run(ctx)
	if err != nil {
		kind := errorKind(err)
		a.metrics.RecordRunDuration(time.Since(start).Seconds(), kind)
		a.logger.Error("allocation failed", "error", err, "kind", kind)

		return nil, err
	}

	a.metrics.RecordRunDuration(time.Since(start).Seconds(), "success")
	for _, p := range roster.Projects() {
		a.metrics.SetGroupSize(p, roster.Count(p))
	}
	a.logger.Info("allocation complete",
		"projects", len(roster.Projects()),
		"members", roster.Len(),
		"duration", time.Since(start))

	return roster, nil
}

func (a *Allocator) run(ctx context.Context) (*types.Roster, error) {
	projects, err := a.src.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing projects: %w", ErrSourceFailed, err)
	}
	subs, err := a.src.ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing submissions: %w", ErrSourceFailed, err)
	}

	if err := a.validate(projects, subs); err != nil {
		a.metrics.RecordValidationFailure(errorKind(err))
		return nil, err
	}

	members := make([]*types.Member, len(subs))
	for i, sub := range subs {
		stack, err := prefs.Decode(projects, sub.Ranks)
		if err != nil {
			a.metrics.RecordValidationFailure(errorKind(err))
			return nil, fmt.Errorf("member %q (row %d): %w", sub.Name, i+1, err)
		}
		members[i] = types.NewMember(sub.Name, stack)
	}

	rnd := a.rnd
	if rnd == nil {
		rnd = a.newRand(projects, subs)
	}

	roster := types.NewRoster(projects)
	eng := engine.New(rnd, a.cfg.MaxGroupSize, a.cfg.MinGroupSize,
		a.cfg.MaxRebalancePasses, a.logger, a.metrics, a.hooks)

	if err := eng.Place(roster, members); err != nil {
		return nil, err
	}
	if err := eng.Rebalance(roster); err != nil {
		return nil, err
	}

	return roster, nil
}

// validate rejects malformed input before any randomized work begins.
// Rank rows are validated during decoding, which also names the offending
// member.
func (a *Allocator) validate(projects []string, subs []types.Submission) error {
	if len(projects) == 0 {
		return fmt.Errorf("%w: no projects", ErrEmptyRoster)
	}
	if len(subs) == 0 {
		return fmt.Errorf("%w: no members", ErrEmptyRoster)
	}

	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if p == "" {
			return fmt.Errorf("%w: project with empty name", ErrEmptyRoster)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateProject, p)
		}
		seen[p] = struct{}{}
	}

	for i, sub := range subs {
		if sub.Name == "" {
			return fmt.Errorf("%w: row %d", ErrBlankMemberName, i+1)
		}
		if len(sub.Ranks) == 0 {
			return fmt.Errorf("%w: member %q (row %d) has no ranks", ErrEmptyRoster, sub.Name, i+1)
		}
	}

	if a.cfg.MinGroupSize*len(projects) > len(subs) {
		return fmt.Errorf("%w: need %d members to fill %d projects at minimum size %d, have %d",
			ErrInfeasibleMinimum, a.cfg.MinGroupSize*len(projects), len(projects),
			a.cfg.MinGroupSize, len(subs))
	}

	return nil
}

// newRand builds the per-run random source from the configuration.
func (a *Allocator) newRand(projects []string, subs []types.Submission) types.Rand {
	seed := a.cfg.Seed
	if seed == 0 && a.cfg.SeedFromInput {
		seed = hash.Fingerprint(projects, subs)
	}
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// errorKind maps a run error to its stable metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, ErrRosterSourceRequired), errors.Is(err, ErrSourceFailed):
		return "source_failed"
	case errors.Is(err, ErrEmptyRoster):
		return "empty_roster"
	case errors.Is(err, ErrDuplicateProject):
		return "duplicate_project"
	case errors.Is(err, ErrBlankMemberName):
		return "blank_member_name"
	case errors.Is(err, ErrRankCountMismatch):
		return "rank_count_mismatch"
	case errors.Is(err, ErrInvalidRank):
		return "invalid_rank"
	case errors.Is(err, ErrDuplicateRank):
		return "duplicate_rank"
	case errors.Is(err, ErrInfeasibleMinimum):
		return "infeasible_minimum"
	case errors.Is(err, ErrUnplaceableMember):
		return "unplaceable_member"
	case errors.Is(err, ErrRebalanceUnsatisfiable):
		return "rebalance_unsatisfiable"
	default:
		return "unknown"
	}
}
