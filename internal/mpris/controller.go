// Package mpris lets desktop media keys and applets control the jukebox.
package mpris

import (
	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/player"
)

// Controller is the part of the jukebox driven over MPRIS.
type Controller interface {
	Next() bool
	Prev() bool
	TogglePause()
	Stop()
	LoadSong(song api.Song)
	Current() (api.Song, bool)
	State() catalog.State
	Player() player.Interface
}

var _ Controller = (*jukebox.Jukebox)(nil)
