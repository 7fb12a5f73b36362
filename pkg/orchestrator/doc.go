// Package orchestrator drives one registration attempt: it loads the choice
// lists into a View, validates the values the View reports and submits a
// valid record exactly once, surfacing a single Outcome per attempt.
package orchestrator
