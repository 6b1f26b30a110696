package sisrejection

import "testing"

func TestNewRecoveryEvent(t *testing.T) {
	e := NewRecoveryEvent(3, 1.5)
	if !e.IsRecovery() {
		t.Errorf("expected recovery event, IsRecovery() returned false")
	}
	if e.SrcNode != 3 || e.TargetNode != 3 {
		t.Errorf(UnequalIntParameterError, "recovery event src/target node", 3, e.SrcNode)
	}
	if e.Time != 1.5 {
		t.Errorf(UnequalFloatParameterError, "recovery event time", 1.5, e.Time)
	}
}

func TestNewInfectionEvent(t *testing.T) {
	e := NewInfectionEvent(1, 2, 4.0)
	if e.IsRecovery() {
		t.Errorf("expected infection event, IsRecovery() returned true")
	}
	if e.SrcNode != 1 {
		t.Errorf(UnequalIntParameterError, "infection event src node", 1, e.SrcNode)
	}
	if e.TargetNode != 2 {
		t.Errorf(UnequalIntParameterError, "infection event target node", 2, e.TargetNode)
	}
	if e.TargetExpectedOldState != Susceptible {
		t.Errorf("expected TargetExpectedOldState Susceptible, got %v", e.TargetExpectedOldState)
	}
	if e.TargetNewState != Infected {
		t.Errorf("expected TargetNewState Infected, got %v", e.TargetNewState)
	}
}

func TestNodeStateString(t *testing.T) {
	if Susceptible.String() != "S" {
		t.Errorf(UnequalStringParameterError, "susceptible state string", "S", Susceptible.String())
	}
	if Infected.String() != "I" {
		t.Errorf(UnequalStringParameterError, "infected state string", "I", Infected.String())
	}
}
