// Package ui draws the window chrome around the board: the cursor and pause
// overlay and the status panel. Everything except this file requires the
// ebiten build tag.
package ui
