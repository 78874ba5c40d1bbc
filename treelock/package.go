// Package treelock implements the per-folder reader/writer monitor that
// backs nstree's concurrency protocol.
//
// Each folder in the tree owns one Monitor. Callers descend the tree
// root-first, acquiring reader rights on every ancestor and, at the
// destination, either reader or writer rights, then release in reverse
// order. The monitor itself knows nothing about trees or paths: it only
// mediates admission to one node, with an explicit hand-off rule so that
// a continuous stream of one role can never starve the other.
package treelock
