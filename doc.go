// Package contagion is a minimal stochastic individual-based epidemic
// simulator for illustrating how intervention strength and base
// transmissibility shape epidemic curves.
//
// # Overview
//
// contagion models a closed population of discrete individuals, each a tiny
// state machine with two flags (infected, immune) and two elapsed-day
// counters. The population advances through daily rounds of randomized
// pairwise contacts: each contact between an infectious and a susceptible
// individual transmits with probability
//
//	P = exp(-I / R0)
//
// where I is the intervention level and R0 the base reproduction number.
// Infection lasts 10 days; the immunity it grants lasts 365 days; when a
// population shows zero current infections, a 1%-per-day endemic reseeding
// check models reservoir/import risk. Individuals cycle Susceptible →
// Infected+Immune → Immune-only → Susceptible indefinitely.
//
// # Components
//
//   - individual.go  - Per-person infection/immunity state machine
//   - simulation.go  - Population, seeding, day loop, contact trials
//   - series.go      - Per-day statistic series and curve summary
//   - scenario.go    - Phased runs for policy that changes over time
//   - assertions.go  - Test helpers for epidemic invariants
//
// # Quick Start
//
// Build a population, run it, read the curves:
//
//	sim, err := contagion.New(10000, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = sim.Run(contagion.RunConfig{
//	    Days:                   200,
//	    DailyInteractions:      5000,
//	    InterventionLevel:      1.0,
//	    BaseReproductionNumber: 2.5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	infected := sim.CurrentInfectionLevel() // one entry per day
//	immune := sim.CurrentImmunityLevel()
//	events := sim.TotalInfectionEvents()
//
// Chained Run calls keep appending to the same series, so changing policy
// over time is just another call:
//
//	sim.Run(contagion.RunConfig{Days: 100, DailyInteractions: 5000,
//	    InterventionLevel: 3.0, BaseReproductionNumber: 2.5}) // lockdown
//	sim.Run(contagion.RunConfig{Days: 100, DailyInteractions: 5000,
//	    InterventionLevel: 0.5, BaseReproductionNumber: 2.5}) // relaxation
//
// or, validated as a batch, sim.RunPhases(contagion.RelaxationPhases(...)).
//
// # Determinism
//
// Every simulation owns its random source. The default is entropy-seeded;
// pass Config.Seed for reproducible runs or Config.Rand to script the exact
// draw sequence in tests. Two equally-seeded simulations given the same
// sequence of Run calls produce identical series, and run(5)+run(5) replays
// identically to run(10).
//
// # Concurrency
//
// None. Run executes synchronously on the caller's goroutine and a
// Simulation is not safe for concurrent use. The computation is bounded by
// days × dailyInteractions, so there is nothing to cancel or time out.
package contagion
