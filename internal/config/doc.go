// Package config manages persistent user settings stored in
// ~/.initgen/config.yaml, with INITGEN_* environment overrides.
package config
