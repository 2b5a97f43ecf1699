//go:build cgo

package gomidi

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Input is an open MIDI input device feeding a Mapper.
type Input struct {
	driver *rtmididrv.Driver
	in     drivers.In
	stop   func()
}

// Open opens the first input whose name starts with namePrefix and starts
// listening to it.
func Open(namePrefix string, mapper *Mapper) (*Input, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("cannot open MIDI driver: %w", err)
	}
	ins, err := driver.Ins()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("cannot list MIDI inputs: %w", err)
	}
	for _, in := range ins {
		if !strings.HasPrefix(in.String(), namePrefix) {
			continue
		}
		if err := in.Open(); err != nil {
			driver.Close()
			return nil, fmt.Errorf("opening MIDI input failed: %w", err)
		}
		stop, err := midi.ListenTo(in, mapper.HandleMessage)
		if err != nil {
			in.Close()
			driver.Close()
			return nil, fmt.Errorf("cannot listen to MIDI input: %w", err)
		}
		return &Input{driver: driver, in: in, stop: stop}, nil
	}
	driver.Close()
	return nil, errors.New("no MIDI input found with prefix " + namePrefix)
}

func (i *Input) String() string {
	return i.in.String()
}

func (i *Input) Close() {
	i.stop()
	if i.in.IsOpen() {
		i.in.Close()
	}
	i.driver.Close()
}
