// Package userdata resolves per-user file locations and persists
// cross-run state such as the last used dependency selection.
package userdata
