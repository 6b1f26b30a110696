package sisrejection

import "testing"

func TestGraphAddNeighborAndDegree(t *testing.T) {
	g := NewGraph(3)
	g.AddNeighbor(0, 1)
	g.AddNeighbor(0, 2)
	g.AddNeighbor(1, 0)

	if g.Size() != 3 {
		t.Errorf(UnequalIntParameterError, "graph size", 3, g.Size())
	}
	if g.Degree(0) != 2 {
		t.Errorf(UnequalIntParameterError, "degree of node 0", 2, g.Degree(0))
	}
	if g.Degree(2) != 0 {
		t.Errorf(UnequalIntParameterError, "degree of node 2", 0, g.Degree(2))
	}
	neighbors := g.Neighbors(0)
	if len(neighbors) != 2 || neighbors[0] != 1 || neighbors[1] != 2 {
		t.Errorf("expected node 0's neighbors to be [1 2], got %v", neighbors)
	}
}
