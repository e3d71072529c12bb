// Package settings persists user-facing preferences as a YAML file under
// the XDG config directory. The replay engine never reads these; they
// belong to the UI layer.
package settings

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	yaml "gopkg.in/yaml.v3"
)

const settingsFile = "chessmate/settings.yaml"

type InvalidSettings struct {
	err string
}

func (e *InvalidSettings) Error() string {
	return fmt.Sprintf("settings error: %s", e.err)
}

type Theme struct {
	WhiteGlyphs   string `yaml:"white_glyphs"`
	BlackGlyphs   string `yaml:"black_glyphs"`
	LightSquare   int    `yaml:"light_square"`
	DarkSquare    int    `yaml:"dark_square"`
	HighlightFrom int    `yaml:"highlight_from"`
	HighlightTo   int    `yaml:"highlight_to"`
}

type Settings struct {
	Theme     Theme  `yaml:"theme"`
	FlipBoard bool   `yaml:"flip_board"`
	LastFile  string `yaml:"last_file"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Theme: Theme{
			// King, queen, rook, bishop, knight, pawn.
			WhiteGlyphs:   "KQRBNP",
			BlackGlyphs:   "kqrbnp",
			LightSquare:   180,
			DarkSquare:    94,
			HighlightFrom: 58,
			HighlightTo:   22,
		},
	}
}

// Load reads the settings file from the XDG config path, falling back to
// defaults when it does not exist. A present but unusable file is an error.
func Load() (Settings, error) {
	path, err := xdg.SearchConfigFile(settingsFile)
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, &InvalidSettings{err: err.Error()}
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, &InvalidSettings{err: err.Error()}
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the settings to the XDG config path, creating it as needed.
func Save(s Settings) error {
	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		return err
	}
	return saveTo(s, path)
}

func saveTo(s Settings, path string) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (s Settings) validate() error {
	if len(s.Theme.WhiteGlyphs) < 6 || len(s.Theme.BlackGlyphs) < 6 {
		return &InvalidSettings{err: "theme glyph sets need six pieces each"}
	}
	return nil
}
