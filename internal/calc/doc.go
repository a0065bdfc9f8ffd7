// Package calc holds the calculator state machine.
//
// Allowed here:
// - the State value and its pure transition functions
// - number parsing and formatting used by evaluation
//
// Not allowed here:
// - rendering, key handling, or any terminal concern
package calc
