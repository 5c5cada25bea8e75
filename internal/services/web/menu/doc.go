// Package menu implements the header dropdown state machine.
//
// A state names at most one open entry. Hover opens an entry until the
// pointer leaves; a click pins it open until the same entry is clicked
// again or a pointer-down lands outside it. Events that name an unknown
// entry, or an entry without a dropdown, are ignored.
package menu
