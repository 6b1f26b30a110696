package sisrejection

import "fmt"

// ScheduleRecovery implements spec section 4.5: for a node n transitioning
// to infected at baseTime, draw its recovery delay, record the resulting
// absolute RecoveryTime on the node table, and enqueue the matching
// recovery event. Must run before ScheduleInfectionAttempt for the same
// node so the attempt scheduler observes a valid RecoveryTime.
func ScheduleRecovery(n int, baseTime float64, nodes *NodeTable, queue *EventQueue, rng RandomSource, recoveryRate float64) {
	delta := rng.DrawExponential(recoveryRate)
	recoveryTime := baseTime + delta
	nodes.SetRecoveryTime(n, recoveryTime)
	queue.Push(NewRecoveryEvent(n, recoveryTime))
}

// ScheduleInfectionAttempt implements spec section 4.4: the rejection-
// sampling infection-attempt scheduler. It places at most one infection
// event originating from n, against n's total infection hazard
// (degree(n) * infectionRate), using a cheap pre-validity filter (step 5)
// to drop hopeless attempts before they ever reach the queue.
//
// n must be currently infected with a RecoveryTime already set and
// strictly greater than baseTime, and must have degree > 0 -- both are
// caller responsibilities (spec section 4.4, "Failure modes"); violating
// either is an invariant violation, not a runtime condition, so this
// function panics rather than returning an error.
func ScheduleInfectionAttempt(n int, baseTime float64, graph *Graph, nodes *NodeTable, queue *EventQueue, rng RandomSource, infectionRate float64) {
	degree := nodes.Degree(n)
	if degree == 0 {
		panic(fmt.Sprintf("ScheduleInfectionAttempt invoked on degree-0 node %d", n))
	}
	recoveryTime := nodes.RecoveryTime(n)
	if recoveryTime <= baseTime {
		panic(fmt.Sprintf("ScheduleInfectionAttempt invoked on node %d whose recovery_time %f has already passed base_time %f", n, recoveryTime, baseTime))
	}

	t := baseTime
	hazard := float64(degree) * infectionRate
	neighbors := graph.Neighbors(n)
	for {
		t += rng.DrawExponential(hazard)
		if t > recoveryTime {
			// Node recovers before any further self-originated attack.
			return
		}
		m := neighbors[rng.UniformNeighbor(degree)]
		switch nodes.State(m) {
		case Susceptible:
			queue.Push(NewInfectionEvent(n, m, t))
			return
		case Infected:
			if nodes.RecoveryTime(m) < t {
				// m will have recovered by t; dispatch-time validation
				// re-checks against m's actual state at t.
				queue.Push(NewInfectionEvent(n, m, t))
				return
			}
			// m stays infected through t: attempt is guaranteed to fail.
			// Loop back and resample rather than rescheduling against
			// every neighbor (spec section 9, "Rejection vs. re-sampling").
		}
	}
}

// InitializeInfected runs the initial setup of spec section 4.6 for every
// node that starts Infected: schedule its recovery first, then its
// infection attempt, so the latter observes a valid RecoveryTime.
// Initially susceptible nodes schedule nothing. Degree-0 infected nodes
// only get a recovery scheduled -- see spec section 9's note that the
// attack scheduler must never be invoked for them.
func InitializeInfected(graph *Graph, nodes *NodeTable, queue *EventQueue, rng RandomSource, recoveryRate, infectionRate float64) {
	for n := 0; n < nodes.Len(); n++ {
		if nodes.State(n) != Infected {
			continue
		}
		ScheduleRecovery(n, 0, nodes, queue, rng, recoveryRate)
		if nodes.Degree(n) > 0 {
			ScheduleInfectionAttempt(n, 0, graph, nodes, queue, rng, infectionRate)
		}
	}
}
