// Package version provides the tool version and catalog schema compatibility checks.
package version

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Tool is the version of the pcl-seq tooling.
const Tool = "0.4.0"

// CatalogSchema is the reference catalog schema version written by this
// release.
const CatalogSchema = "1.1.0"

// CatalogConstraint is the range of catalog schema versions this release
// can read.
const CatalogConstraint = "^1.0.0"

// ErrIncompatibleVersion is returned when a catalog file declares a schema
// version outside CatalogConstraint.
var ErrIncompatibleVersion = errors.New("incompatible catalog version")

// Parse parses a semantic version string. A leading "v" is accepted.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// CheckCatalog verifies that a catalog file's declared schema version can be
// read by this release. name identifies the file in error messages.
func CheckCatalog(name, ver string) error {
	if ver == "" {
		return fmt.Errorf("%w: %s declares no version", ErrIncompatibleVersion, name)
	}

	constraint, err := semver.NewConstraint(CatalogConstraint)
	if err != nil {
		return fmt.Errorf("invalid catalog constraint %s: %w", CatalogConstraint, err)
	}

	v, err := Parse(ver)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s has version %s, require %s", ErrIncompatibleVersion, name, ver, CatalogConstraint)
	}
	return nil
}

// Newer reports whether a is a later version than b. Unparseable versions
// are never newer.
func Newer(a, b string) bool {
	va, err := Parse(a)
	if err != nil {
		return false
	}
	vb, err := Parse(b)
	if err != nil {
		return false
	}
	return va.GreaterThan(vb)
}

// Info returns a one-line version banner.
func Info() string {
	return fmt.Sprintf("pcl-seq %s (catalog schema %s, reads %s)", Tool, CatalogSchema, CatalogConstraint)
}
