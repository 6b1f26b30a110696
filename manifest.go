package sisrejection

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// RunManifest is the output provenance record written after every run
// (SPEC_FULL section 4.11). It reuses the teacher's TOML struct-tag
// convention (evoepi_config.go's EvoEpiConfig) but in the reverse
// direction: there, TOML is decoded as input configuration; here it is
// encoded as output provenance, since spec.md section 6 fixes the CLI to
// two positional arguments and leaves no room for a config-file input.
type RunManifest struct {
	RunID         string  `toml:"run_id"`
	Seed          int64   `toml:"seed,omitempty"`
	Horizon       float64 `toml:"horizon"`
	InfectionRate float64 `toml:"infection_rate"`
	RecoveryRate  float64 `toml:"recovery_rate"`
	NodeCount     int     `toml:"node_count"`
	EdgeCount     int     `toml:"edge_count"`
	WallClockMs   int64   `toml:"wall_clock_ms"`
	RealSteps     int     `toml:"real_steps"`
	RejectedSteps int     `toml:"rejected_steps"`
}

// WriteManifest serializes m to <out>_manifest.toml using
// github.com/BurntSushi/toml. Writing the manifest is best-effort: the
// caller logs, but does not fail the run on, any error this returns,
// since spec.md section 6's exit-code contract covers input errors only.
func WriteManifest(outpath string, m RunManifest) error {
	path := manifestPath(outpath)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(m)
}

func manifestPath(outpath string) string {
	for _, suffix := range []string{".txt", ".csv"} {
		if strings.HasSuffix(outpath, suffix) {
			return strings.TrimSuffix(outpath, suffix) + "_manifest.toml"
		}
	}
	return outpath + "_manifest.toml"
}
