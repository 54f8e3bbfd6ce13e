package initializr

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortVersions orders versions newest-first. Entries that do not parse
// as semver keep their relative service order and sort after the rest.
func SortVersions(versions []CatalogVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, erri := parseVersion(versions[i].ID)
		vj, errj := parseVersion(versions[j].ID)
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		return vi.GreaterThan(vj)
	})
}

// matchesRange reports whether version falls inside an Initializr version
// range expression. Supported forms:
//
//	""                      every version
//	"2.0.0"                 2.0.0 and later
//	"[2.0.0,3.0.0)"         bracket interval, [ ] inclusive, ( ) exclusive
//
// Unparsable versions or bounds match permissively; the service is the
// final authority and rejects invalid combinations itself.
func matchesRange(version, rng string) bool {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return true
	}

	v, err := parseVersion(version)
	if err != nil {
		return true
	}

	// Single version means "this version or later".
	if !strings.ContainsAny(rng, "[](),") {
		lo, err := parseVersion(rng)
		if err != nil {
			return true
		}
		return !v.LessThan(lo)
	}

	loInclusive := strings.HasPrefix(rng, "[")
	hiInclusive := strings.HasSuffix(rng, "]")
	inner := strings.Trim(rng, "[]()")
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return true
	}

	if loStr := strings.TrimSpace(parts[0]); loStr != "" {
		lo, err := parseVersion(loStr)
		if err == nil {
			if v.LessThan(lo) || (!loInclusive && v.Equal(lo)) {
				return false
			}
		}
	}
	if hiStr := strings.TrimSpace(parts[1]); hiStr != "" {
		hi, err := parseVersion(hiStr)
		if err == nil {
			if v.GreaterThan(hi) || (!hiInclusive && v.Equal(hi)) {
				return false
			}
		}
	}
	return true
}

// parseVersion parses service version ids, tolerating the legacy
// four-segment forms ("2.7.0.RELEASE", "3.0.0.M1") by mapping the
// qualifier onto a semver prerelease.
func parseVersion(id string) (*semver.Version, error) {
	id = strings.TrimPrefix(strings.TrimSpace(id), "v")
	id = strings.TrimSuffix(id, ".RELEASE")

	segments := strings.SplitN(id, ".", 4)
	if len(segments) == 4 {
		id = strings.Join(segments[:3], ".") + "-" + segments[3]
	}
	return semver.NewVersion(id)
}
