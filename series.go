package contagion

// The three statistic series are append-only and stay in lockstep: every Run
// call appends exactly one entry per simulated day to each of them. The
// accessors return copies so callers cannot desynchronize them.

// Days returns the cumulative number of days simulated across all Run calls.
func (s *Simulation) Days() int {
	return len(s.totalInfectionEvents)
}

// PopulationSize returns the fixed number of individuals.
func (s *Simulation) PopulationSize() int {
	return len(s.individuals)
}

// TotalInfectionEvents returns the per-day running count of transmission
// events. Monotone non-decreasing across the whole series, including across
// chained Run calls. Indexed by cumulative day number starting at 0.
func (s *Simulation) TotalInfectionEvents() []int {
	return copySeries(s.totalInfectionEvents)
}

// CurrentInfectionLevel returns the per-day count of currently infected
// individuals at day end. A caller typically normalizes by PopulationSize
// for charting.
func (s *Simulation) CurrentInfectionLevel() []int {
	return copySeries(s.currentInfectionLevel)
}

// CurrentImmunityLevel returns the per-day count of currently immune
// individuals at day end.
func (s *Simulation) CurrentImmunityLevel() []int {
	return copySeries(s.currentImmunityLevel)
}

// CountInfected returns the number of currently infected individuals.
func (s *Simulation) CountInfected() int {
	n := 0
	for i := range s.individuals {
		if s.individuals[i].Infected {
			n++
		}
	}
	return n
}

// CountImmune returns the number of currently immune individuals.
func (s *Simulation) CountImmune() int {
	n := 0
	for i := range s.individuals {
		if s.individuals[i].Immune {
			n++
		}
	}
	return n
}

// Individuals returns a snapshot copy of the population state.
func (s *Simulation) Individuals() []Individual {
	out := make([]Individual, len(s.individuals))
	copy(out, s.individuals)
	return out
}

func copySeries(series []int) []int {
	out := make([]int, len(series))
	copy(out, series)
	return out
}

// CurveStats is a summary snapshot of the accumulated epidemic curve.
type CurveStats struct {
	Days               int
	TotalTransmissions int

	PeakInfected int // highest day-end infection count
	PeakDay      int // first day the peak was reached

	FinalInfected int // day-end infection count of the last simulated day
	FinalImmune   int // day-end immunity count of the last simulated day

	ZeroInfectionDays int // days whose day-end infection count was zero

	PeakInfectedFraction float64 // PeakInfected / population
	FinalImmuneFraction  float64 // FinalImmune / population
}

// Stats summarizes the series accumulated so far. With no simulated days it
// returns the zero value.
func (s *Simulation) Stats() CurveStats {
	days := s.Days()
	if days == 0 {
		return CurveStats{}
	}

	st := CurveStats{
		Days:               days,
		TotalTransmissions: s.totalInfectionEvents[days-1],
		FinalInfected:      s.currentInfectionLevel[days-1],
		FinalImmune:        s.currentImmunityLevel[days-1],
	}

	for day, infected := range s.currentInfectionLevel {
		if infected > st.PeakInfected {
			st.PeakInfected = infected
			st.PeakDay = day
		}
		if infected == 0 {
			st.ZeroInfectionDays++
		}
	}

	pop := float64(s.PopulationSize())
	st.PeakInfectedFraction = float64(st.PeakInfected) / pop
	st.FinalImmuneFraction = float64(st.FinalImmune) / pop

	return st
}
