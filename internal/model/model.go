// Package model holds the entities persisted by the repositories and the
// read-only projections built from them.
package model
