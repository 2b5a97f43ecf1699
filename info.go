package gainfx

import "encoding/binary"

type (
	// Info is the static description of the plugin handed to the host.
	Info struct {
		Name           string
		Vendor         string
		UniqueID       int32
		Version        int32
		InputChannels  int
		OutputChannels int
		Parameters     int
		Category       Category
	}

	Category int
)

const (
	CategoryUnknown Category = iota
	CategoryEffect
	CategorySynth
)

// ParameterName is the host-visible name of the amplitude parameter.
const ParameterName = "Amplitude"

// PluginInfo describes this plugin.
var PluginInfo = Info{
	Name:           "Gain Effect",
	Vendor:         "gainfx",
	UniqueID:       243213073,
	Version:        1,
	InputChannels:  2,
	OutputChannels: 2,
	Parameters:     1,
	Category:       CategoryEffect,
}

// UniqueIDBytes returns the unique id as the four byte (big endian) code the
// VST2 interface expects.
func (i Info) UniqueIDBytes() [4]byte {
	var ret [4]byte
	binary.BigEndian.PutUint32(ret[:], uint32(i.UniqueID))
	return ret
}

func (c Category) String() string {
	switch c {
	case CategoryEffect:
		return "Effect"
	case CategorySynth:
		return "Synth"
	default:
		return "Unknown"
	}
}
