// Package workspace decides how a freshly generated project is opened:
// as a new editing session or added to the current one.
package workspace
