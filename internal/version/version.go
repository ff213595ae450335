// Package version compares makegen versions and checks the "requires"
// constraint a values file may declare.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsRelease reports whether current is a semver release build rather than a
// development build such as "dev".
func IsRelease(current string) bool {
	_, err := parse(current)
	return err == nil
}

// Satisfies reports whether current meets constraint (e.g. ">= 0.2, < 1").
// An empty constraint and a non-release build satisfy everything. A malformed
// constraint is an error.
func Satisfies(constraint, current string) (bool, error) {
	if strings.TrimSpace(constraint) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parse(current)
	if err != nil {
		return true, nil
	}
	return c.Check(v), nil
}

// Check returns an error when current does not satisfy constraint.
func Check(constraint, current string) error {
	ok, err := Satisfies(constraint, current)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("makegen %s does not satisfy requirement %q", current, constraint)
	}
	return nil
}

func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
