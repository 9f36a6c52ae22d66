package contagion

import (
	"errors"
	"math"
	"slices"
	"testing"
)

// TestRunPhases_BatchValidation verifies a bad phase anywhere in the batch
// leaves the simulation untouched.
func TestRunPhases_BatchValidation(t *testing.T) {
	sim, err := NewSimulation(Config{PopulationSize: 50, SeedInfections: 2, Seed: 9})
	if err != nil {
		t.Fatal(err)
	}

	phases := []RunConfig{
		{Days: 5, DailyInteractions: 20, InterventionLevel: 1, BaseReproductionNumber: 2},
		{Days: 0, DailyInteractions: 20, InterventionLevel: 1, BaseReproductionNumber: 2}, // invalid
	}

	err = sim.RunPhases(phases)
	if err == nil {
		t.Fatal("RunPhases with an invalid phase succeeded, want error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Error not wrapped in ErrInvalidConfig: %v", err)
	}
	if sim.Days() != 0 {
		t.Errorf("Failed batch still simulated %d days, want 0 (validate before running)", sim.Days())
	}

	t.Logf("✓ Batch validation runs before any phase mutates state")
}

// TestRunPhases_Empty verifies an empty batch is rejected.
func TestRunPhases_Empty(t *testing.T) {
	sim, err := New(10, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := sim.RunPhases(nil); err == nil {
		t.Error("RunPhases(nil) succeeded, want error")
	}
}

// TestRunPhases_EquivalentToChainedRuns verifies RunPhases is sugar for
// calling Run once per phase.
func TestRunPhases_EquivalentToChainedRuns(t *testing.T) {
	cfg := Config{PopulationSize: 80, SeedInfections: 4, Seed: 1234}
	phases := []RunConfig{
		{Days: 4, DailyInteractions: 40, InterventionLevel: 2, BaseReproductionNumber: 2.5},
		{Days: 6, DailyInteractions: 40, InterventionLevel: 0.5, BaseReproductionNumber: 2.5},
	}

	batched, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := batched.RunPhases(phases); err != nil {
		t.Fatal(err)
	}

	manual, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, phase := range phases {
		if err := manual.Run(phase); err != nil {
			t.Fatal(err)
		}
	}

	if got, want := batched.Days(), 10; got != want {
		t.Fatalf("Batched days = %d, want %d", got, want)
	}
	if !slices.Equal(batched.TotalInfectionEvents(), manual.TotalInfectionEvents()) ||
		!slices.Equal(batched.CurrentInfectionLevel(), manual.CurrentInfectionLevel()) ||
		!slices.Equal(batched.CurrentImmunityLevel(), manual.CurrentImmunityLevel()) {
		t.Error("RunPhases produced different series than chained Run calls")
	}
}

// TestRelaxationPhases verifies the generated schedule and its zero floor.
func TestRelaxationPhases(t *testing.T) {
	tests := []struct {
		name        string
		start, step float64
		n           int
		wantLevels  []float64
	}{
		{"Steady descent", 3, 1, 4, []float64{3, 2, 1, 0}},
		{"Floored at zero", 1, 1, 3, []float64{1, 0, 0}},
		{"Single phase", 2.5, 0.5, 1, []float64{2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phases := RelaxationPhases(tt.start, tt.step, tt.n, 30, 500, 2.5)

			if len(phases) != tt.n {
				t.Fatalf("Got %d phases, want %d", len(phases), tt.n)
			}

			for i, phase := range phases {
				if math.Abs(phase.InterventionLevel-tt.wantLevels[i]) > 1e-12 {
					t.Errorf("Phase %d intervention = %v, want %v",
						i, phase.InterventionLevel, tt.wantLevels[i])
				}
				if phase.Days != 30 || phase.DailyInteractions != 500 {
					t.Errorf("Phase %d shape = %d days × %d interactions, want 30 × 500",
						i, phase.Days, phase.DailyInteractions)
				}
			}
		})
	}
}

// TestRelaxationScenario_EndToEnd runs the decreasing-intervention
// calibration scenario and checks the universal invariants over the whole
// stitched series.
func TestRelaxationScenario_EndToEnd(t *testing.T) {
	sim, err := NewSimulation(Config{PopulationSize: 2000, SeedInfections: 5, Seed: 20260824})
	if err != nil {
		t.Fatal(err)
	}

	phases := RelaxationPhases(2.0, 0.5, 5, 30, 1000, 2.5)
	if err := sim.RunPhases(phases); err != nil {
		t.Fatal(err)
	}

	if got, want := sim.Days(), 150; got != want {
		t.Fatalf("Days() = %d, want %d", got, want)
	}

	AssertEpidemicInvariants(t, sim)
	PrintEpidemicCurve(t, sim, 15)
}
