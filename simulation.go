package contagion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
// Validation always runs before any state mutation: a rejected call leaves
// the simulation exactly as it was.
var ErrInvalidConfig = errors.New("invalid configuration")

// Rand is the subset of *math/rand.Rand the simulation consumes.
//
// The engine draws in a fixed, observable order (see Run), so tests can
// inject a scripted source and assert exact state transitions per trial.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Config controls simulation construction.
type Config struct {
	// PopulationSize is the fixed number of individuals. Must be ≥ 1.
	PopulationSize int

	// SeedInfections is how many seeding draws to make at construction.
	// Draws are uniform WITH replacement, so duplicates can land on the
	// same individual and the number initially infected may be lower.
	// Zero is valid: the run stays all-susceptible until endemic reseeding.
	SeedInfections int

	// Seed seeds a private generator for reproducible runs.
	// Zero means seed from system entropy.
	Seed int64

	// Rand overrides Seed with a caller-owned source. Used by tests to
	// script exact draw sequences.
	Rand Rand

	// Logger receives structured progress events. Nil means discard.
	Logger *slog.Logger
}

// DefaultConfig returns a small pedagogical population.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 10000,
		SeedInfections: 4,
	}
}

// RunConfig holds the epidemiological parameters for one Run call.
// Successive calls on the same simulation may use different parameters;
// that is how policy changes over time are modeled.
type RunConfig struct {
	// Days to advance the population. Must be ≥ 1.
	Days int

	// DailyInteractions is the number of random pairwise contact trials
	// per day. Zero is a valid degenerate value (no contact at all);
	// negative is rejected.
	DailyInteractions int

	// InterventionLevel is the strength of non-pharmaceutical measures.
	// Must be ≥ 0; zero means no intervention.
	InterventionLevel float64

	// BaseReproductionNumber is the baseline transmissibility absent
	// interventions. Must be > 0.
	BaseReproductionNumber float64
}

// DefaultRunConfig returns a moderately-mitigated hundred-day run sized for
// the population of DefaultConfig.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Days:                   100,
		DailyInteractions:      5000,
		InterventionLevel:      1.0,
		BaseReproductionNumber: 2.5,
	}
}

// TransmissionProbability is the chance that a qualifying contact between an
// infectious and a susceptible individual results in transmission:
//
//	P = exp(-interventionLevel / baseReproductionNumber)
//
// With no intervention P = 1 and every qualifying contact transmits.
func TransmissionProbability(interventionLevel, baseReproductionNumber float64) (float64, error) {
	if baseReproductionNumber <= 0 {
		return 0, fmt.Errorf("%w: base reproduction number must be > 0, got %v",
			ErrInvalidConfig, baseReproductionNumber)
	}
	if interventionLevel < 0 {
		return 0, fmt.Errorf("%w: intervention level must be ≥ 0, got %v",
			ErrInvalidConfig, interventionLevel)
	}

	return math.Exp(-interventionLevel / baseReproductionNumber), nil
}

// Simulation owns a closed population of individuals and advances it through
// daily rounds of randomized pairwise contacts, accumulating three per-day
// statistic series across all Run calls.
//
// The simulation is single-threaded by design: Run executes synchronously on
// the caller's goroutine and the type is not safe for concurrent use.
type Simulation struct {
	individuals []Individual
	rng         Rand
	logger      *slog.Logger

	// transmissions counts transmission events cumulatively across ALL Run
	// calls; it is the value appended daily to totalInfectionEvents, which
	// keeps that series monotone even across chained runs.
	transmissions int

	totalInfectionEvents  []int
	currentInfectionLevel []int
	currentImmunityLevel  []int
}

// NewSimulation constructs a population and seeds the initial infections.
//
// Seeding draws Config.SeedInfections indices uniformly with replacement and
// infects each; duplicate draws beyond the first are no-ops. The statistic
// series start empty; they grow only as Run simulates days.
func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.PopulationSize < 1 {
		return nil, fmt.Errorf("%w: population size must be ≥ 1, got %d",
			ErrInvalidConfig, cfg.PopulationSize)
	}
	if cfg.SeedInfections < 0 {
		return nil, fmt.Errorf("%w: seed infection count must be ≥ 0, got %d",
			ErrInvalidConfig, cfg.SeedInfections)
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Simulation{
		individuals: make([]Individual, cfg.PopulationSize),
		rng:         rng,
		logger:      logger,
	}

	for i := 0; i < cfg.SeedInfections; i++ {
		s.individuals[rng.Intn(cfg.PopulationSize)].Infect()
	}

	logger.Debug("population seeded",
		"population", cfg.PopulationSize,
		"seed_draws", cfg.SeedInfections,
		"initially_infected", s.CountInfected())

	return s, nil
}

// New constructs a simulation from the two core parameters with an
// entropy-seeded generator. Shorthand for NewSimulation.
func New(populationSize, seedInfections int) (*Simulation, error) {
	return NewSimulation(Config{
		PopulationSize: populationSize,
		SeedInfections: seedInfections,
	})
}

// Run advances the population by cfg.Days additional days, appending one
// entry per day to each statistic series. It never resets prior accumulated
// state, so chained calls with different parameters trace a changing policy.
//
// Each day, in order:
//
//  1. cfg.DailyInteractions contact trials. A trial draws two independent
//     uniform indices (self-pairing permitted; it always skips). The trial
//     skips if both parties are immune, and skips if neither is infected.
//     Otherwise exactly one party is infectious and the other susceptible:
//     one uniform draw below P transmits, infecting both (a no-op on the
//     already-infected party).
//  2. The day-end statistics are appended.
//  3. If the just-appended infection count is exactly zero, an endemic
//     reseeding check fires with probability EndemicReseedProbability and
//     infects one uniformly chosen individual, possibly a no-op when that
//     individual is immune but not infected.
//  4. Every individual advances one day.
func (s *Simulation) Run(cfg RunConfig) error {
	if err := validateRunConfig(cfg); err != nil {
		return err
	}

	// Transmission probability is fixed for the whole call.
	p, _ := TransmissionProbability(cfg.InterventionLevel, cfg.BaseReproductionNumber)

	startDay := s.Days()
	startTransmissions := s.transmissions

	for day := 0; day < cfg.Days; day++ {
		for trial := 0; trial < cfg.DailyInteractions; trial++ {
			s.contactTrial(p)
		}

		infected := s.CountInfected()
		immune := s.CountImmune()
		s.totalInfectionEvents = append(s.totalInfectionEvents, s.transmissions)
		s.currentInfectionLevel = append(s.currentInfectionLevel, infected)
		s.currentImmunityLevel = append(s.currentImmunityLevel, immune)

		if infected == 0 && s.rng.Float64() < EndemicReseedProbability {
			idx := s.rng.Intn(len(s.individuals))
			s.individuals[idx].Infect()
			s.logger.Debug("endemic reseed",
				"day", startDay+day,
				"index", idx,
				"took", s.individuals[idx].Infected)
		}

		for i := range s.individuals {
			s.individuals[i].AdvanceOneDay()
		}
	}

	s.logger.Info("run complete",
		"days", cfg.Days,
		"daily_interactions", cfg.DailyInteractions,
		"intervention", cfg.InterventionLevel,
		"r0", cfg.BaseReproductionNumber,
		"transmission_probability", p,
		"new_transmissions", s.transmissions-startTransmissions,
		"infected", s.CountInfected(),
		"immune", s.CountImmune())

	return nil
}

// contactTrial runs one randomized pairwise contact: two independent uniform
// index draws, the sequential skip checks, and at most one transmission draw.
// The draw for i == j is not filtered out; a self-pair is either both-immune
// or neither-infected and always takes a skip path.
func (s *Simulation) contactTrial(p float64) {
	a := &s.individuals[s.rng.Intn(len(s.individuals))]
	b := &s.individuals[s.rng.Intn(len(s.individuals))]

	if a.Immune && b.Immune {
		return
	}
	if !a.Infected && !b.Infected {
		return
	}

	// Exactly one party is infectious here (infected implies immune, so a
	// doubly-infected pair was caught by the both-immune check) and the
	// other is susceptible.
	if s.rng.Float64() < p {
		a.Infect()
		b.Infect()
		s.transmissions++
	}
}
