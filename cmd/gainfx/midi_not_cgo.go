//go:build !cgo

package main

import (
	"log"

	"github.com/gainfx/gainfx/gomidi"
)

func openMIDI(prefix string, mapper *gomidi.Mapper) func() {
	// with no cgo, there is no MIDI driver
	log.Print("MIDI input not available: built without cgo")
	return func() {}
}
