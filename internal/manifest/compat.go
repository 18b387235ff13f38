package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinEngineSatisfied reports whether a host engine release (a dotted version
// string such as "1.21.0", with "v" prefix tolerated) meets the manifest's
// declared min_engine_version.
func MinEngineSatisfied(m *Manifest, engine string) (bool, error) {
	ev, err := semver.NewVersion(strings.TrimPrefix(engine, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing engine version %q: %w", engine, err)
	}

	min := m.Header.MinEngineVersion
	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d.%d", min.Major, min.Minor, min.Patch))
	if err != nil {
		return false, fmt.Errorf("building constraint for %s: %w", min, err)
	}

	return constraint.Check(ev), nil
}
