package sisrejection

import "testing"

func TestNodeTableDefaults(t *testing.T) {
	table := NewNodeTable(3)
	if table.Len() != 3 {
		t.Errorf(UnequalIntParameterError, "node table length", 3, table.Len())
	}
	for n := 0; n < 3; n++ {
		if table.State(n) != Susceptible {
			t.Errorf("expected node %d to default to Susceptible", n)
		}
		if table.Degree(n) != 0 {
			t.Errorf(UnequalIntParameterError, "default degree", 0, table.Degree(n))
		}
	}
}

func TestNodeTableSetters(t *testing.T) {
	table := NewNodeTable(2)
	table.SetState(0, Infected)
	table.SetRecoveryTime(0, 3.25)
	table.SetDegree(0, 4)

	if table.State(0) != Infected {
		t.Errorf("expected node 0 to be Infected")
	}
	if table.RecoveryTime(0) != 3.25 {
		t.Errorf(UnequalFloatParameterError, "recovery time", 3.25, table.RecoveryTime(0))
	}
	if table.Degree(0) != 4 {
		t.Errorf(UnequalIntParameterError, "degree", 4, table.Degree(0))
	}
	if table.State(1) != Susceptible {
		t.Errorf("expected node 1 to remain Susceptible")
	}
}
