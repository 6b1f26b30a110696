package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/segmentio/ksuid"

	sis "github.com/kentwait/sisrejection"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("usage: %s <graph_input_path> <trace_output_path>", os.Args[0])
	}
	graphPath := flag.Arg(0)
	outPath := flag.Arg(1)

	runID := ksuid.New().String()
	seed := time.Now().UTC().UnixNano()
	rng := sis.NewSeededRandomSource(seed)

	graph, nodes, err := sis.LoadGraph(graphPath)
	if err != nil {
		log.Fatal(err)
	}

	sim := sis.NewSimulator(graph, nodes, rng)

	start := time.Now()
	summary, realSteps, rejectedSteps := sim.Run()
	elapsed := time.Since(start)

	writer := sis.NewTraceWriter(outPath)
	if err := writer.WriteTrace(summary); err != nil {
		log.Fatal(err)
	}
	if err := writer.WriteRuntime(elapsed.Milliseconds(), realSteps, rejectedSteps); err != nil {
		log.Fatal(err)
	}

	edgeCount := 0
	for n := 0; n < graph.Size(); n++ {
		edgeCount += graph.Degree(n)
	}
	manifest := sis.RunManifest{
		RunID:         runID,
		Seed:          seed,
		Horizon:       sis.Horizon,
		InfectionRate: sis.InfectionRate,
		RecoveryRate:  sis.RecoveryRate,
		NodeCount:     graph.Size(),
		EdgeCount:     edgeCount,
		WallClockMs:   elapsed.Milliseconds(),
		RealSteps:     realSteps,
		RejectedSteps: rejectedSteps,
	}
	if err := sis.WriteManifest(outPath, manifest); err != nil {
		log.Printf("provenance manifest: %v", err)
	}

	audit := sis.NewSQLiteAuditLogger(outPath, runID)
	if err := audit.Init(); err != nil {
		log.Printf("audit sink: %v", err)
	} else {
		audit.WriteSnapshots(summary)
	}

	log.Printf("run %s: %d real steps, %d rejected steps in %s", runID, realSteps, rejectedSteps, elapsed)
}
