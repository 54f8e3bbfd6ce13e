package wizard

import (
	"fmt"
	"regexp"
)

var (
	groupIDPattern    = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
	artifactIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// ValidateGroupID checks the Java package naming convention
// (dot-separated lowercase segments, e.g. "com.example").
func ValidateGroupID(v string) error {
	if !groupIDPattern.MatchString(v) {
		return fmt.Errorf("invalid group id %q: use lowercase dot-separated segments like com.example", v)
	}
	return nil
}

// ValidateArtifactID checks the artifact naming convention
// (lowercase letters, digits, and hyphens, e.g. "demo-service").
func ValidateArtifactID(v string) error {
	if !artifactIDPattern.MatchString(v) {
		return fmt.Errorf("invalid artifact id %q: use lowercase letters, digits, and hyphens", v)
	}
	return nil
}
