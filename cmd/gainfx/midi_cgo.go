//go:build cgo

package main

import (
	"log"

	"github.com/gainfx/gainfx/gomidi"
)

func openMIDI(prefix string, mapper *gomidi.Mapper) func() {
	input, err := gomidi.Open(prefix, mapper)
	if err != nil {
		log.Printf("MIDI input disabled: %v", err)
		return func() {}
	}
	log.Printf("MIDI input %v, controller %d", input, mapper.Controller)
	return input.Close
}
