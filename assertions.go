package contagion

import "testing"

// Test helpers for the properties every well-formed simulation satisfies,
// regardless of parameters or random seed. Call them after any sequence of
// Run calls.

// AssertSeriesAligned verifies the three statistic series have equal length,
// equal to the cumulative number of simulated days.
func AssertSeriesAligned(t *testing.T, s *Simulation) {
	t.Helper()

	days := s.Days()
	total := len(s.TotalInfectionEvents())
	infection := len(s.CurrentInfectionLevel())
	immunity := len(s.CurrentImmunityLevel())

	if total != days || infection != days || immunity != days {
		t.Errorf("Series out of sync: days=%d total=%d infection=%d immunity=%d",
			days, total, infection, immunity)
		return
	}

	t.Logf("✓ Series aligned: %d entries each", days)
}

// AssertBoundedLevels verifies every infection and immunity level lies in
// [0, populationSize].
func AssertBoundedLevels(t *testing.T, s *Simulation) {
	t.Helper()

	pop := s.PopulationSize()

	for day, level := range s.CurrentInfectionLevel() {
		if level < 0 || level > pop {
			t.Errorf("Infection level out of bounds: day %d has %d (population %d)",
				day, level, pop)
		}
	}
	for day, level := range s.CurrentImmunityLevel() {
		if level < 0 || level > pop {
			t.Errorf("Immunity level out of bounds: day %d has %d (population %d)",
				day, level, pop)
		}
	}

	t.Logf("✓ Levels bounded by population size %d across %d days", pop, s.Days())
}

// AssertMonotoneTransmissions verifies the total-infection-events series is
// non-decreasing over the full appended series, including across chained
// Run calls.
func AssertMonotoneTransmissions(t *testing.T, s *Simulation) {
	t.Helper()

	series := s.TotalInfectionEvents()
	for day := 1; day < len(series); day++ {
		if series[day] < series[day-1] {
			t.Errorf("Transmission count decreased: day %d→%d went %d→%d",
				day-1, day, series[day-1], series[day])
		}
	}

	if len(series) > 0 {
		t.Logf("✓ Transmission count monotone: 0 → %d over %d days",
			series[len(series)-1], len(series))
	}
}

// AssertInfectedImpliesImmune verifies no individual is infected without
// being immune, and that no timer ran negative.
func AssertInfectedImpliesImmune(t *testing.T, s *Simulation) {
	t.Helper()

	for i, p := range s.Individuals() {
		if p.Infected && !p.Immune {
			t.Errorf("Individual %d infected without immunity", i)
		}
		if p.DaysInfected < 0 || p.DaysImmune < 0 {
			t.Errorf("Individual %d has negative timer: infected=%d immune=%d",
				i, p.DaysInfected, p.DaysImmune)
		}
	}

	t.Logf("✓ Infected ⇒ immune holds for all %d individuals", s.PopulationSize())
}

// AssertEpidemicInvariants runs every universal invariant as a subtest.
func AssertEpidemicInvariants(t *testing.T, s *Simulation) {
	t.Helper()

	t.Run("SeriesAligned", func(t *testing.T) {
		AssertSeriesAligned(t, s)
	})

	t.Run("BoundedLevels", func(t *testing.T) {
		AssertBoundedLevels(t, s)
	})

	t.Run("MonotoneTransmissions", func(t *testing.T) {
		AssertMonotoneTransmissions(t, s)
	})

	t.Run("InfectedImpliesImmune", func(t *testing.T) {
		AssertInfectedImpliesImmune(t, s)
	})
}

// PrintEpidemicCurve dumps the normalized curve to the test log, sampled to
// at most maxRows rows. Zero maxRows means every day.
func PrintEpidemicCurve(t *testing.T, s *Simulation, maxRows int) {
	t.Helper()

	days := s.Days()
	if days == 0 {
		t.Logf("(no days simulated)")
		return
	}

	stride := 1
	if maxRows > 0 && days > maxRows {
		stride = days / maxRows
	}

	total := s.TotalInfectionEvents()
	infection := s.CurrentInfectionLevel()
	immunity := s.CurrentImmunityLevel()
	pop := float64(s.PopulationSize())

	t.Logf("\n=== Epidemic Curve ===")
	t.Logf("  Day   Infected   Immune    Total events")
	t.Logf("  ----  ---------  --------  ------------")
	for day := 0; day < days; day += stride {
		t.Logf("  %-5d %8.2f%%  %7.2f%%  %12d",
			day,
			float64(infection[day])/pop*100,
			float64(immunity[day])/pop*100,
			total[day])
	}

	st := s.Stats()
	t.Logf("\nSummary:")
	t.Logf("  Peak infection: %d (%.2f%%) on day %d",
		st.PeakInfected, st.PeakInfectedFraction*100, st.PeakDay)
	t.Logf("  Final immunity: %d (%.2f%%)", st.FinalImmune, st.FinalImmuneFraction*100)
	t.Logf("  Transmission events: %d", st.TotalTransmissions)
	t.Logf("  Zero-infection days: %d", st.ZeroInfectionDays)
}
