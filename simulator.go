package sisrejection

// Simulation constants, compile-time by design (spec section 6): changing
// them does not alter the external interface.
const (
	RecoveryRate  = 1.0
	InfectionRate = 0.6
	Horizon       = 10.0
	SaveInterval  = 1000
)

// Snapshot is one entry of the summary: population counts as of the last
// dispatched event, and that event's time (spec section 3).
type Snapshot struct {
	Infected    int
	Susceptible int
	CurrentTime float64
}

// Simulator owns the event queue and node table exclusively for the
// duration of a run; the graph adjacency is treated as immutable and may
// be shared by reference (spec section 5).
type Simulator struct {
	Graph *Graph
	Nodes *NodeTable
	Queue *EventQueue
	Rng   RandomSource

	counts        Snapshot
	step          int
	realSteps     int
	rejectedSteps int
	summary       []Snapshot
}

// NewSimulator builds a simulator over graph/nodes, scheduling the
// initial recovery and infection-attempt events for every initially
// infected node (spec section 4.6).
func NewSimulator(graph *Graph, nodes *NodeTable, rng RandomSource) *Simulator {
	queue := NewEventQueue()
	InitializeInfected(graph, nodes, queue, rng, RecoveryRate, InfectionRate)

	s := &Simulator{
		Graph: graph,
		Nodes: nodes,
		Queue: queue,
		Rng:   rng,
	}
	infected := 0
	for n := 0; n < nodes.Len(); n++ {
		if nodes.State(n) == Infected {
			infected++
		}
	}
	s.counts = Snapshot{Infected: infected, Susceptible: nodes.Len() - infected, CurrentTime: 0}
	return s
}

// Run drives the dispatch loop to completion (current_time >= Horizon or
// queue exhaustion), returning the snapshot summary, the count of
// successful steps, and the count of rejected steps (spec section 4.7,
// 4.8).
//
// Queue exhaustion (spec section 4.7 step 1) is a termination condition,
// not a dispatched event: it sets current_time := HORIZON + epsilon and
// ends the run without consuming a step slot or appending a pre-step
// snapshot, so it never counts toward real_steps/rejected_steps (spec
// section 8, P6).
func (s *Simulator) Run() (summary []Snapshot, realSteps, rejectedSteps int) {
	currentTime := 0.0
	for currentTime < Horizon {
		if s.Queue.Len() == 0 {
			currentTime = Horizon + 1e-7
			break
		}

		if s.step < 100 || s.step%SaveInterval == 0 {
			s.summary = append(s.summary, s.counts)
		}

		eventTime, successful := s.dispatch()
		currentTime = eventTime
		s.step++
		if successful {
			s.realSteps++
		} else {
			s.rejectedSteps++
		}
		s.counts.CurrentTime = currentTime
	}
	s.counts.CurrentTime = currentTime
	s.summary = append(s.summary, s.counts)
	return s.summary, s.realSteps, s.rejectedSteps
}

// dispatch performs one step of spec section 4.7: pop the minimum-time
// event, validate and apply it, schedule follow-on events, and maintain
// running counts. Returns the dispatched event's time and whether it was
// applied. Callers must check Queue.Len() first; dispatch assumes a
// non-empty queue (the empty case is handled by Run, see above).
func (s *Simulator) dispatch() (float64, bool) {
	e := s.Queue.PopMin()
	t := e.Time

	var successful bool
	if e.IsRecovery() {
		if s.Nodes.State(e.SrcNode) != Infected {
			panic("recovery event dispatched against a non-infected node")
		}
		s.Nodes.SetState(e.SrcNode, Susceptible)
		successful = true
	} else {
		successful = s.Nodes.State(e.SrcNode) == e.SrcExpectedState &&
			s.Nodes.State(e.TargetNode) == e.TargetExpectedOldState
		if successful {
			s.Nodes.SetState(e.TargetNode, Infected)
		}
	}

	if !e.IsRecovery() {
		if successful {
			ScheduleRecovery(e.TargetNode, t, s.Nodes, s.Queue, s.Rng, RecoveryRate)
			if s.Nodes.Degree(e.TargetNode) > 0 {
				ScheduleInfectionAttempt(e.TargetNode, t, s.Graph, s.Nodes, s.Queue, s.Rng, InfectionRate)
			}
		}
		// Unconditionally, whether this attempt succeeded or was
		// rejected: this replaces the one event-slot src consumed
		// from the queue (spec section 4.7 step 4). src originated
		// this attack, so its degree is already known positive.
		ScheduleInfectionAttempt(e.SrcNode, t, s.Graph, s.Nodes, s.Queue, s.Rng, InfectionRate)
	}

	if e.IsRecovery() {
		s.counts.Susceptible++
		s.counts.Infected--
	} else if successful {
		s.counts.Susceptible--
		s.counts.Infected++
	}

	return t, successful
}
