package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a three-component addon version with a beta marker. The wire
// format encodes it either as a dotted string ("1.2.3", "1.2.3-beta") or as
// a [major, minor, patch] integer array; both normalize to this one type.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease bool
}

// String renders the version in its dotted display form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease {
		s += "-beta"
	}
	return s
}

// fallbackVersion is substituted for dependency records whose version field
// is absent or unusable. Dependencies are the one place where a bad version
// is tolerated instead of failing the decode.
var fallbackVersion = Version{Major: 1, Minor: 0, Patch: 0}

// componentNames label the three required numeric components for error
// messages.
var componentNames = [3]string{"major", "minor", "patch"}

// ParseVersion parses the dotted string encoding. An optional literal
// "-beta" suffix marks a prerelease. At least three numeric components are
// required; components past the third are ignored, matching the lenience of
// the historical format.
func ParseVersion(text string) (Version, error) {
	rest, beta := strings.CutSuffix(text, "-beta")
	parts := strings.Split(rest, ".")
	if len(parts) < 3 {
		return Version{}, decodeErr(KindMalformedVersion, "",
			"version %q has %d component(s), need 3", text, len(parts))
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Version{}, decodeErr(KindMalformedVersion, "",
				"version %q: %s component %q is not an integer", text, componentNames[i], parts[i])
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Prerelease: beta}, nil
}

// VersionFromTriple builds a Version from the integer-array encoding. This
// encoding has no prerelease concept, so Prerelease is always false.
// Elements past the third are ignored; fewer than three is an error, the
// function never guesses missing components.
func VersionFromTriple(triple []int) (Version, error) {
	if len(triple) < 3 {
		return Version{}, decodeErr(KindMalformedVersion, "",
			"version triple has %d element(s), need 3", len(triple))
	}
	return Version{Major: triple[0], Minor: triple[1], Patch: triple[2]}, nil
}
