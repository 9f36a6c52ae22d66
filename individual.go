package contagion

// Disease progression thresholds, in simulated days.
const (
	// InfectiousPeriodDays is how long an infection lasts before it clears.
	InfectiousPeriodDays = 10

	// ImmunityPeriodDays is how long immunity lasts before it lapses.
	// Immunity starts together with infection and outlives it.
	ImmunityPeriodDays = 365

	// EndemicReseedProbability is the daily chance of one imported infection
	// while the population shows zero current infections.
	EndemicReseedProbability = 0.01
)

// Individual is one person in the population: a tiny discrete-time state
// machine with two flags and two elapsed-day counters.
//
// The states and transitions:
//
//	Susceptible     --Infect()-->        Infected+Immune
//	Infected+Immune --10 days-->         Immune-only (infection clears, immunity persists)
//	Immune-only     --365 days total-->  Susceptible (immunity lapses)
//
// There is no terminal state; the cycle can repeat indefinitely.
//
// Invariant: Infected implies Immune. Infection never occurs without
// concurrent immunity, but immunity persists after the infection clears.
type Individual struct {
	Infected     bool
	DaysInfected int // days since infection onset; reset when infection clears
	Immune       bool
	DaysImmune   int // days since immunity onset; reset when immunity lapses
}

// Infect makes a susceptible individual infected and immune in one step.
//
// It is a no-op on anyone already infected or already immune, so calling it
// on a transmission partner that is the source of the infection, on a
// duplicate seeding draw, or on an immune survivor picked by endemic
// reseeding is always safe. Calling it twice leaves the same state as
// calling it once.
func (p *Individual) Infect() {
	if p.Infected || p.Immune {
		return
	}

	p.Infected = true
	p.Immune = true
	p.DaysInfected = 0
	p.DaysImmune = 0
}

// AdvanceOneDay moves the individual's state machine forward by one day.
//
// The infection and immunity timers tick independently: clearing the
// infection at day 10 does NOT touch immunity, and both checks run every
// call even though the two thresholds can never coincide with the current
// constants. The logic must not assume they differ.
func (p *Individual) AdvanceOneDay() {
	if p.Infected {
		p.DaysInfected++
		if p.DaysInfected >= InfectiousPeriodDays {
			p.Infected = false
			p.DaysInfected = 0
		}
	}

	if p.Immune {
		p.DaysImmune++
		if p.DaysImmune >= ImmunityPeriodDays {
			p.Immune = false
			p.DaysImmune = 0
		}
	}
}

// Susceptible reports whether the individual can currently be infected.
func (p *Individual) Susceptible() bool {
	return !p.Infected && !p.Immune
}
