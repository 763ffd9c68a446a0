package styles

// Theme is a resolved color table. The highlighter and the editor query it
// by token; lookups never fail: a missing entry falls back to the
// per-class default and finally to the theme's foreground.
type Theme struct {
	Name   string
	Colors map[ColorToken]string
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{Name: DefaultPreset.Name, Colors: DefaultPreset.Colors}
}

// FromPreset resolves a built-in preset by name.
func FromPreset(name string) (Theme, bool) {
	p, ok := Presets[name]
	if !ok {
		return Theme{}, false
	}
	return Theme{Name: p.Name, Colors: p.Colors}, true
}

// Color returns the color string for a token. Missing tokens resolve to the
// syntax class default when one exists, otherwise the foreground.
func (t Theme) Color(token ColorToken) string {
	if c, ok := t.Colors[token]; ok {
		return c
	}
	if c, ok := syntaxClassDefaults[token]; ok {
		return c
	}
	return t.Foreground()
}

// SyntaxColor returns the color for a syntax token-class name such as
// "keyword" or "string". Unknown class names resolve to the foreground so
// the highlighter never fails on a missing theme entry.
func (t Theme) SyntaxColor(class string) string {
	token := ColorToken("syntax." + class)
	if c, ok := t.Colors[token]; ok {
		return c
	}
	if c, ok := syntaxClassDefaults[token]; ok {
		return c
	}
	return t.Foreground()
}

// Foreground returns the theme's default text color.
func (t Theme) Foreground() string {
	if c, ok := t.Colors[TokenForeground]; ok {
		return c
	}
	return DefaultPreset.Colors[TokenForeground]
}
