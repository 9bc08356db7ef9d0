// Package schedule implements the critical path method over a precedence
// DAG: a forward pass for earliest start/finish, a backward pass for latest
// start/finish, slack derivation and critical path extraction.
package schedule
