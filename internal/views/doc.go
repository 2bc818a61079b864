// Package views derives data-structure representations (adjacency list, hash
// table, heap order, analytics, path search) from full collection reads.
//
// Every builder is a pure function recomputed per request; nothing here keeps
// state between calls.
package views
