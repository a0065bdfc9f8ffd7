// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (buttons, keypad grid, display surface)
// - geometry helpers that map terminal cells back to buttons
//
// Not allowed here:
// - calculator state, key handling, or focus policy
package widgets
