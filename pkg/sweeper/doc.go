// Package sweeper holds the minesweeper rules: the reducer that writes state
// and the middleware that guards actions and drives flood-fill reveals.
package sweeper
