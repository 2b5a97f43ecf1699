//go:build plugin

package main

import (
	"io"
	"log"
	"time"

	"github.com/gainfx/gainfx"
	"github.com/gainfx/gainfx/editor"
	"github.com/gainfx/gainfx/editor/gioui"
	"github.com/gainfx/gainfx/logging"
	"github.com/gainfx/gainfx/version"
	"pipelined.dev/audio/vst2"
)

// startLogging redirects the log to the log file. Failures are ignored; the
// log then goes to stderr.
func startLogging() io.Closer {
	dir, err := logging.DefaultDir()
	if err != nil {
		return io.NopCloser(nil)
	}
	closer, err := logging.Init(dir, logging.DefaultFileName)
	if err != nil {
		return io.NopCloser(nil)
	}
	return closer
}

func init() {
	vst2.PluginAllocator = func(h vst2.Host) (vst2.Plugin, vst2.Dispatcher) {
		logCloser := startLogging()
		info := gainfx.PluginInfo
		log.Printf("init %s %s", info.Name, version.VersionOrHash)
		prefs, err := editor.ReadPreferences()
		if err != nil {
			log.Printf("using default preferences: %v", err)
		}
		amplitude := gainfx.NewAmplitude(gainfx.DefaultAmplitude)
		effect := gainfx.NewEffect(amplitude)
		model := editor.NewModel(editor.NewBroker(), amplitude, prefs.Knob)
		valueMap := prefs.Knob.ValueMap()
		e := gioui.NewEditor(model, prefs)
		// the host does not hand over a parent window, so the editor
		// opens as a window of its own
		e.Open(gioui.NewParentWindow(0))
		params := hostParameters(amplitude, valueMap)
		if len(params) != info.Parameters {
			log.Printf("%d host parameters, plugin info declares %d", len(params), info.Parameters)
		}
		param := params[0]
		automation := gainfx.NewAutomation(param.Value)
		in := make(gainfx.AudioBuffer, info.InputChannels)
		out := make(gainfx.AudioBuffer, info.OutputChannels)
		return vst2.Plugin{
				UniqueID:       info.UniqueIDBytes(),
				Version:        info.Version,
				InputChannels:  info.InputChannels,
				OutputChannels: info.OutputChannels,
				Name:           info.Name,
				Vendor:         info.Vendor,
				Category:       pluginCategory(info.Category),
				Parameters:     params,
				ProcessFloatFunc: func(inBuf, outBuf vst2.FloatBuffer) {
					automation.Sync(&param.Value, amplitude)
					for c := range in {
						in[c] = inBuf.Channel(c)
					}
					for c := range out {
						out[c] = outBuf.Channel(c)
					}
					effect.Process(in, out)
				},
			}, vst2.Dispatcher{
				CanDoFunc: func(pcds vst2.PluginCanDoString) vst2.CanDoResponse {
					return vst2.NoCanDo
				},
				CloseFunc: func() {
					e.Close()
					if !e.Wait(3 * time.Second) {
						log.Print("editor did not close in time")
					}
					log.Print("close")
					logCloser.Close()
				},
				GetChunkFunc: func(isPreset bool) []byte {
					b, err := gainfx.MarshalState(amplitude)
					if err != nil {
						log.Print(err)
					}
					return b
				},
				SetChunkFunc: func(data []byte, isPreset bool) {
					if err := gainfx.UnmarshalState(data, amplitude); err != nil {
						log.Print(err)
					}
				},
			}
	}
}

// hostParameters returns the parameters in host index order; the amplitude
// is index 0.
func hostParameters(amplitude *gainfx.Amplitude, valueMap gainfx.ValueMap) []*vst2.Parameter {
	return []*vst2.Parameter{{
		Name:  gainfx.ParameterName,
		Value: amplitude.Get(),
		GetValueLabelFunc: func(value float32) string {
			return valueMap.NormalizedToDisplay(valueMap.ValueToNormalized(value))
		},
	}}
}

func pluginCategory(c gainfx.Category) vst2.PluginCategory {
	switch c {
	case gainfx.CategoryEffect:
		return vst2.PluginCategoryEffect
	case gainfx.CategorySynth:
		return vst2.PluginCategorySynth
	default:
		return vst2.PluginCategoryUnknown
	}
}

func main() {}
