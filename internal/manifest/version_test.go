package manifest

import (
	"errors"
	"testing"
)

func TestParseVersion_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.2.3", Version{Major: 1, Minor: 2, Patch: 3}},
		{"0.0.0", Version{}},
		{"1.2.3-beta", Version{Major: 1, Minor: 2, Patch: 3, Prerelease: true}},
		{"10.20.30-beta", Version{Major: 10, Minor: 20, Patch: 30, Prerelease: true}},
		// Components past the third are ignored, matching the historical format.
		{"1.2.3.4", Version{Major: 1, Minor: 2, Patch: 3}},
		{"1.2.3.4-beta", Version{Major: 1, Minor: 2, Patch: 3, Prerelease: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if err != nil {
				t.Fatalf("ParseVersion(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVersion_Malformed(t *testing.T) {
	tests := []struct {
		in   string
		desc string
	}{
		{"1.2", "two components"},
		{"1", "one component"},
		{"", "empty string"},
		{"-beta", "suffix only"},
		{"a.b.c", "non-numeric components"},
		{"1.x.3", "non-numeric minor"},
		{"1.2.3-rc", "unrecognized suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ParseVersion(tt.in)
			if err == nil {
				t.Fatalf("ParseVersion(%q) expected error (%s), got nil", tt.in, tt.desc)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("ParseVersion(%q) error type = %T, want *DecodeError", tt.in, err)
			}
			if de.Kind != KindMalformedVersion {
				t.Errorf("error kind = %q, want %q", de.Kind, KindMalformedVersion)
			}
		})
	}
}

func TestVersionFromTriple(t *testing.T) {
	got, err := VersionFromTriple([]int{1, 19, 80})
	if err != nil {
		t.Fatalf("VersionFromTriple error: %v", err)
	}
	want := Version{Major: 1, Minor: 19, Patch: 80}
	if got != want {
		t.Errorf("VersionFromTriple = %+v, want %+v", got, want)
	}
	if got.Prerelease {
		t.Error("triple encoding has no prerelease concept, Prerelease must be false")
	}
}

func TestVersionFromTriple_ExtraElementsIgnored(t *testing.T) {
	got, err := VersionFromTriple([]int{2, 0, 1, 99})
	if err != nil {
		t.Fatalf("VersionFromTriple error: %v", err)
	}
	if want := (Version{Major: 2, Minor: 0, Patch: 1}); got != want {
		t.Errorf("VersionFromTriple = %+v, want %+v", got, want)
	}
}

func TestVersionFromTriple_TooShort(t *testing.T) {
	for _, triple := range [][]int{nil, {}, {1}, {1, 2}} {
		_, err := VersionFromTriple(triple)
		if err == nil {
			t.Errorf("VersionFromTriple(%v) expected error, got nil", triple)
			continue
		}
		var de *DecodeError
		if !errors.As(err, &de) || de.Kind != KindMalformedVersion {
			t.Errorf("VersionFromTriple(%v) error = %v, want malformed-version DecodeError", triple, err)
		}
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{Version{Major: 1, Minor: 2, Patch: 3, Prerelease: true}, "1.2.3-beta"},
		{Version{}, "0.0.0"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
