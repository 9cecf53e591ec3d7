// Package scaffold runs the component and container scaffolding flows.
//
// A flow is an ordered list of steps executed by Runner. Steps run strictly
// one after another and the first failure stops the run. Files written by
// earlier steps stay on disk. All user interaction goes through Port, which
// keeps the flows headless.
package scaffold
