package gainfx

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// State is the plugin state persisted by the host between sessions, e.g. in
// a project file.
type State struct {
	Amplitude float32 `yaml:"amplitude"`
}

// MarshalState serializes the current amplitude.
func MarshalState(a *Amplitude) ([]byte, error) {
	b, err := yaml.Marshal(State{Amplitude: a.Get()})
	if err != nil {
		return nil, fmt.Errorf("cannot marshal plugin state: %w", err)
	}
	return b, nil
}

// UnmarshalState restores the amplitude from data produced by MarshalState.
// On error, the amplitude is left untouched.
func UnmarshalState(data []byte, a *Amplitude) error {
	s := State{Amplitude: a.Get()}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal plugin state: %w", err)
	}
	a.Set(s.Amplitude)
	return nil
}
