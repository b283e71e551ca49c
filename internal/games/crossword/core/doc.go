// Package core implements the crossword selection and navigation engine.
//
// A Grid holds cell topology, letters and presentation flags. Words are never
// stored: a word is the maximal run of playable cells from an origin along a
// direction, rescanned whenever a Selection is built. The Navigator owns the
// single active Selection and maps clue, cell and key events onto it.
//
// The package has no I/O and no dependencies outside the standard library,
// so every operation is deterministic and runs to completion synchronously.
package core
