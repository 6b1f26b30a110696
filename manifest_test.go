package sisrejection

import "testing"

func TestManifestPathDerivation(t *testing.T) {
	cases := map[string]string{
		"/tmp/out.txt": "/tmp/out_manifest.toml",
		"/tmp/out.csv": "/tmp/out_manifest.toml",
		"/tmp/out":     "/tmp/out_manifest.toml",
	}
	for in, want := range cases {
		got := manifestPath(in)
		if got != want {
			t.Errorf(UnequalStringParameterError, "manifest path for "+in, want, got)
		}
	}
}
