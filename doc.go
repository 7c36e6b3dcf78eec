// Package tickeval evaluates agent programs for a turn-based game one
// environment tick at a time.
//
// Programs are trees built with package expr and run by package interp
// against a game.Environment. Package fitness evaluates many programs
// concurrently, and this package holds the configuration shared by them.
package tickeval
