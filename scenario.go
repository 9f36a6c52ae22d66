package contagion

import "fmt"

// RunPhases runs a sequence of Run calls back to back on the same population.
//
// Every phase is validated before ANY phase runs, extending the
// never-partially-applied rule to the whole batch: a bad phase leaves the
// simulation untouched. Once validation passes, RunPhases is equivalent to
// calling Run once per phase in order: the series keep appending and the
// population state carries across phase boundaries.
//
// This is the chained-call pattern for modeling policy that changes over
// time, e.g. tracing a relaxation scenario with decreasing intervention
// levels across successive phases.
func (s *Simulation) RunPhases(phases []RunConfig) error {
	if len(phases) == 0 {
		return fmt.Errorf("%w: at least one phase required", ErrInvalidConfig)
	}

	for i, phase := range phases {
		if err := validateRunConfig(phase); err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
	}

	for _, phase := range phases {
		if err := s.Run(phase); err != nil {
			return err
		}
	}

	return nil
}

// RelaxationPhases builds the decreasing-intervention calibration scenario:
// n phases of daysPerPhase days each, starting at intervention level start
// and dropping by step per phase (floored at zero).
func RelaxationPhases(start, step float64, n, daysPerPhase, dailyInteractions int, r0 float64) []RunConfig {
	phases := make([]RunConfig, 0, n)
	level := start

	for i := 0; i < n; i++ {
		if level < 0 {
			level = 0
		}
		phases = append(phases, RunConfig{
			Days:                   daysPerPhase,
			DailyInteractions:      dailyInteractions,
			InterventionLevel:      level,
			BaseReproductionNumber: r0,
		})
		level -= step
	}

	return phases
}

// validateRunConfig mirrors the checks Run performs up front.
func validateRunConfig(cfg RunConfig) error {
	if cfg.Days < 1 {
		return fmt.Errorf("%w: days must be ≥ 1, got %d", ErrInvalidConfig, cfg.Days)
	}
	if cfg.DailyInteractions < 0 {
		return fmt.Errorf("%w: daily interactions must be ≥ 0, got %d",
			ErrInvalidConfig, cfg.DailyInteractions)
	}
	_, err := TransmissionProbability(cfg.InterventionLevel, cfg.BaseReproductionNumber)
	return err
}
