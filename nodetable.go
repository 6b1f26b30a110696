package sisrejection

// NodeInfo is the per-node record described in spec section 3: current
// state, cached degree, and -- meaningful only while State == Infected --
// the scheduled absolute recovery time.
type NodeInfo struct {
	State        NodeState
	RecoveryTime float64
	Degree       int
}

// NodeTable is plain indexed per-node storage (spec section 4.3). It has
// no hidden invariants beyond those in spec section 3; enforcing those is
// the simulator loop's job, not the table's.
type NodeTable struct {
	nodes []NodeInfo
}

// NewNodeTable allocates a table for n nodes, all initialized to the
// zero NodeInfo (Susceptible, degree 0).
func NewNodeTable(n int) *NodeTable {
	return &NodeTable{nodes: make([]NodeInfo, n)}
}

// Len returns the number of nodes in the table.
func (t *NodeTable) Len() int {
	return len(t.nodes)
}

// State returns node n's current state.
func (t *NodeTable) State(n int) NodeState {
	return t.nodes[n].State
}

// SetState sets node n's current state.
func (t *NodeTable) SetState(n int, s NodeState) {
	t.nodes[n].State = s
}

// RecoveryTime returns node n's scheduled recovery time. Only meaningful
// while State(n) == Infected.
func (t *NodeTable) RecoveryTime(n int) float64 {
	return t.nodes[n].RecoveryTime
}

// SetRecoveryTime sets node n's scheduled recovery time.
func (t *NodeTable) SetRecoveryTime(n int, rt float64) {
	t.nodes[n].RecoveryTime = rt
}

// Degree returns node n's cached neighbor count.
func (t *NodeTable) Degree(n int) int {
	return t.nodes[n].Degree
}

// SetDegree sets node n's cached neighbor count. Called once by the
// graph loader; never mutated afterward.
func (t *NodeTable) SetDegree(n, degree int) {
	t.nodes[n].Degree = degree
}
