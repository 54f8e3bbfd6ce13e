// Package initializr is a client for Spring Initializr-compatible
// generation services: the version/dependency catalog and the
// starter archive download URL.
package initializr
