// Package generator fetches a generated starter archive from the service
// and materializes it into a local directory.
package generator
