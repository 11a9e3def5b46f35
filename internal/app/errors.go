package app

import "github.com/pkg/errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the window frontend requires building with the 'ebiten' tag")
