// Package cli implements the interactive SkillSync terminal client: an App
// wiring the stores to a renderer, the line-based REPL that dispatches
// commands to it, and the prompt helpers used to read forms and passwords.
package cli
