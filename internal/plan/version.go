package plan

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// FormatVersion is written into every plan this build produces.
	FormatVersion = "1.0.0"

	// SupportedFormats is the semver constraint plans must satisfy to be read.
	SupportedFormats = "^1.0.0"
)

var supported = semver.MustParse(FormatVersion)

// CheckCompatible returns an error unless version satisfies SupportedFormats.
// A leading "v" is tolerated.
func CheckCompatible(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing plan format version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedFormats, err)
	}
	if !c.Check(v) {
		if v.GreaterThan(supported) {
			return fmt.Errorf("plan format %s is newer than supported %s; upgrade the CLI", v, SupportedFormats)
		}
		return fmt.Errorf("plan format %s is not supported (want %s)", v, SupportedFormats)
	}
	return nil
}
