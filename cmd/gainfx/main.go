package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/app"
	"github.com/gainfx/gainfx"
	"github.com/gainfx/gainfx/editor"
	"github.com/gainfx/gainfx/editor/gioui"
	"github.com/gainfx/gainfx/gomidi"
	"github.com/gainfx/gainfx/logging"
	"github.com/gainfx/gainfx/oto"
	"github.com/gainfx/gainfx/version"
)

var toneFrequency = flag.Float64("tone", 0, "preview the effect on a sine tone of `frequency` Hz; 0 disables audio")
var sampleRate = flag.Int("sample-rate", 44100, "sample rate of the tone preview")
var midiInput = flag.String("midi-input", "", "control the gain from the MIDI input matching device name prefix")
var midiController = flag.Uint("midi-cc", gomidi.DefaultController, "MIDI controller number mapped to the gain")
var logToFile = flag.Bool("log", false, "write the log to $HOME/tmp/"+logging.DefaultFileName)
var printVersion = flag.Bool("version", false, "print version and exit")

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println(version.VersionOrHash)
		return
	}
	if *logToFile {
		if err := startLogging(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	prefs, err := editor.ReadPreferences()
	if err != nil {
		log.Printf("using default preferences: %v", err)
	}
	amplitude := gainfx.NewAmplitude(gainfx.DefaultAmplitude)
	broker := editor.NewBroker()
	model := editor.NewModel(broker, amplitude, prefs.Knob)

	closeMIDI := func() {}
	if isFlagPassed("midi-input") {
		closeMIDI = openMIDI(*midiInput, &gomidi.Mapper{Controller: uint8(*midiController), Broker: broker})
	}

	var audioCloser io.Closer = io.NopCloser(nil)
	if *toneFrequency > 0 {
		audioContext, err := oto.NewContext(*sampleRate, gainfx.PluginInfo.OutputChannels)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		t := newTone(*toneFrequency, *sampleRate)
		effect := gainfx.NewEffect(amplitude)
		var input gainfx.AudioBuffer
		in := make(gainfx.AudioBuffer, gainfx.PluginInfo.OutputChannels)
		audioCloser = audioContext.Play(func(buf gainfx.AudioBuffer) error {
			if input.Frames() < buf.Frames() {
				input = gainfx.MakeAudioBuffer(len(buf), buf.Frames())
			}
			for c := range in {
				in[c] = input[c][:buf.Frames()]
			}
			t.Render(in)
			effect.Process(in, buf)
			return nil
		})
	}

	e := gioui.NewEditor(model, prefs)
	e.Open(gioui.ParentWindow{})
	finished := e.Finished()
	go func() {
		<-finished
		audioCloser.Close()
		closeMIDI()
		os.Exit(0)
	}()
	app.Main()
}

func startLogging() error {
	dir, err := logging.DefaultDir()
	if err != nil {
		return err
	}
	_, err = logging.Init(dir, logging.DefaultFileName)
	return err
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
