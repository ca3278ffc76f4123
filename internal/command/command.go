// Package command holds one small, immutable operation object per
// pantry mutation or query. Every command is constructed with its
// parameters and a store handle and exposes a single Execute method, so
// the HTTP layer can treat all operations identically: build, execute,
// map the outcome.
package command
