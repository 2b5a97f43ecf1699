package editor

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gainfx/gainfx"
	"gopkg.in/yaml.v3"
)

type (
	Preferences struct {
		Window WindowPreferences
		Knob   KnobPreferences
	}

	WindowPreferences struct {
		Width  int
		Height int
		Title  string
	}

	// KnobPreferences configure the mapping from the knob position to the
	// amplitude. Default is the normalized position restored by a double
	// click; Step is the normalized change of one scroll notch.
	KnobPreferences struct {
		Min      float32
		Max      float32
		Default  float32
		Decimals int
		Step     float32
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// ConfigDirName is the directory under os.UserConfigDir searched for
// preferences.yml.
const ConfigDirName = "gainfx"

func DefaultPreferences() Preferences {
	var p Preferences
	dec := yaml.NewDecoder(bytes.NewReader(defaultPreferencesYaml))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		panic(fmt.Errorf("failed to unmarshal default preferences: %w", err))
	}
	return p
}

// ReadPreferences returns the default preferences overridden by the user's
// preferences.yml, if one exists. A missing file is not an error; a
// malformed one is, and the defaults are returned with it.
func ReadPreferences() (Preferences, error) {
	p := DefaultPreferences()
	configDir, err := os.UserConfigDir()
	if err != nil {
		return p, nil
	}
	return p, ReadPreferencesFile(filepath.Join(configDir, ConfigDirName, "preferences.yml"), &p)
}

// ReadPreferencesFile overrides target with the fields present in path.
func ReadPreferencesFile(path string, target *Preferences) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read preferences: %w", err)
	}
	override := *target
	if err := yaml.Unmarshal(b, &override); err != nil {
		return fmt.Errorf("cannot parse %s: %w", path, err)
	}
	*target = override
	return nil
}

func (k KnobPreferences) ValueMap() gainfx.ValueMap {
	return gainfx.ValueMap{Min: k.Min, Max: k.Max, Decimals: k.Decimals}
}
