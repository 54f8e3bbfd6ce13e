// Package prompt provides the wizard.Prompter implementations: a plain
// console prompter for non-terminal streams and a bubbletea terminal UI.
package prompt
