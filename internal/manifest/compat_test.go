package manifest

import "testing"

func compatManifest(min Version) *Manifest {
	return &Manifest{Header: Header{MinEngineVersion: min}}
}

func TestMinEngineSatisfied(t *testing.T) {
	min := Version{Major: 1, Minor: 19, Patch: 0}

	tests := []struct {
		engine string
		want   bool
	}{
		{"1.21.0", true},
		{"1.19.0", true},
		{"v1.19.0", true},
		{"1.18.31", false},
		{"0.14.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			got, err := MinEngineSatisfied(compatManifest(min), tt.engine)
			if err != nil {
				t.Fatalf("MinEngineSatisfied error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MinEngineSatisfied(%s vs min %s) = %v, want %v", tt.engine, min, got, tt.want)
			}
		})
	}
}

func TestMinEngineSatisfied_BadEngineVersion(t *testing.T) {
	_, err := MinEngineSatisfied(compatManifest(Version{Major: 1}), "not-a-version")
	if err == nil {
		t.Fatal("expected error for unparseable engine version, got nil")
	}
}
