package sisrejection

import (
	"bufio"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// lineRe splits a graph-file line into id, state, and the raw neighbor
// list, mirroring the teacher's LoadAdjacencyMatrix regexp-per-line style
// (loader.go) rather than a hand-rolled split-and-validate pass.
var lineRe = regexp.MustCompile(`^\s*(\d+)\s*;\s*(\S+)\s*;\s*(.*?)\s*$`)

// LoadGraph parses the contact-graph input file described in spec
// section 6: one semicolon-delimited record per line,
// "id;S|I;neighbor,neighbor,...". It returns the adjacency graph and the
// matching initial NodeTable (state and degree populated, RecoveryTime
// left at zero pending scheduling).
//
// Node ids are expected in strictly increasing order starting at 0; a
// gap or repeat is logged as a warning via log.Printf and the record is
// still placed positionally, matching the teacher's tolerant
// line-parsers (LoadSequences, LoadFitnessMatrix) that report and carry
// on rather than abort. A node with no neighbors is likewise only
// warned about. An unrecognized state letter is fatal, since there is
// no sane degenerate interpretation of a corrupt state column.
func LoadGraph(path string) (*Graph, *NodeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening graph file %s", path)
	}
	defer f.Close()
	return loadGraph(f)
}

func loadGraph(r io.Reader) (*Graph, *NodeTable, error) {
	scanner := bufio.NewScanner(r)

	type record struct {
		line      int
		id        int
		state     NodeState
		neighbors []int
	}
	var records []record
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) < 3 {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, errors.Errorf(FileParsingError, lineNum, "expected id;S|I;neighbor,neighbor,...")
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, nil, errors.Wrapf(err, FileParsingError, lineNum, "invalid node id")
		}
		var state NodeState
		switch m[2] {
		case "S":
			state = Susceptible
		case "I":
			state = Infected
		default:
			return nil, nil, errors.Errorf(FileParsingError, lineNum, "unrecognized state "+m[2])
		}
		var neighbors []int
		raw := strings.TrimSpace(m[3])
		if raw != "" {
			for _, tok := range strings.Split(raw, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				nb, err := strconv.Atoi(tok)
				if err != nil {
					return nil, nil, errors.Wrapf(err, FileParsingError, lineNum, "invalid neighbor id")
				}
				neighbors = append(neighbors, nb)
			}
		}
		records = append(records, record{line: lineNum, id: id, state: state, neighbors: neighbors})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading graph file")
	}

	n := len(records)
	graph := NewGraph(n)
	nodes := NewNodeTable(n)
	for i, rec := range records {
		if rec.id != i {
			log.Printf("graph loader: line %d: node id %d out of sequence, expected %d", rec.line, rec.id, i)
		}
		if len(rec.neighbors) == 0 {
			log.Printf("graph loader: line %d: node %d has no neighbors", rec.line, rec.id)
		}
		nodes.SetState(i, rec.state)
		nodes.SetDegree(i, len(rec.neighbors))
		for _, nb := range rec.neighbors {
			graph.AddNeighbor(i, nb)
		}
	}
	return graph, nodes, nil
}
