// Package wizard implements the interactive project-generation flow:
// a fixed sequence of steps that accumulate answers, a dependency
// select-loop, and the hand-off to the download pipeline. Prompting is
// behind the Prompter interface so the flow is UI-agnostic and testable.
package wizard
