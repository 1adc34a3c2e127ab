// Package registry implements the observer side of language switching:
// an ordered list of subscribers that are invoked, in registration order,
// with the active language whenever it changes.
//
// Slot-keyed registration keeps at most one subscriber per logical slot
// ("one live status bar"), replacing runtime-type deduplication with an
// explicit caller-supplied key.
package registry
