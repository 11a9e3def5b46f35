//go:build !ebiten

package app

import (
	"log"

	"golife/internal/config"
)

// Run reports that the GUI build tag is missing.
func Run(*config.Config, *log.Logger) error {
	return ErrNoGUI
}
