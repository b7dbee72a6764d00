// Package state holds the shared UI state as a set of narrow, independently
// owned slices.
//
// A Slice is a value plus its setter. The component that owns a slice keeps
// the *Slice and writes through Set or Update; every other component gets a
// Reader and only reads or subscribes. Subscriptions are per slice, so a
// write to the theme re-evaluates theme consumers and nobody else.
//
// Writes are synchronous and notify in subscription order. When an action
// writes a section slice and then an open slice, any subscriber of the open
// slice already reads the new section.
package state
