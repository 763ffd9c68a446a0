package styles

import "fmt"

// ThemeConfig mirrors the theme section of the user config.
type ThemeConfig struct {
	// Preset names a built-in theme as the base. Empty means "default",
	// unless Mode selects the light variant.
	Preset string

	// Mode forces "light" or "dark" when no preset is named.
	Mode string

	// Colors overrides individual tokens by dot-notation key,
	// e.g. "syntax.keyword" -> "#FF0000".
	Colors map[string]string
}

// ApplyTheme resolves a ThemeConfig into a Theme. Unknown presets are an
// error; unknown override keys are applied as-is (they simply never get
// queried), so a config written for a newer quill does not break an older
// one.
func ApplyTheme(cfg ThemeConfig) (Theme, error) {
	name := cfg.Preset
	if name == "" {
		if cfg.Mode == "light" {
			name = "light"
		} else {
			name = "default"
		}
	}

	base, ok := FromPreset(name)
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme preset %q", name)
	}

	if len(cfg.Colors) == 0 {
		return base, nil
	}

	colors := make(map[ColorToken]string, len(base.Colors)+len(cfg.Colors))
	for k, v := range base.Colors {
		colors[k] = v
	}
	for k, v := range cfg.Colors {
		colors[ColorToken(k)] = v
	}
	return Theme{Name: base.Name, Colors: colors}, nil
}
