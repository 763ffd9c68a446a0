package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"light":            LightPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
}

// DefaultPreset is the dark One-Dark-style scheme quill ships with.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default dark theme",
	Colors: map[ColorToken]string{
		TokenForeground:    "#ABB2BF",
		TokenBackground:    "#282C34",
		TokenSelection:     "#3E4451",
		TokenCursor:        "#528BFF",
		TokenLineHighlight: "#2C313A",

		TokenSyntaxKeyword:  "#C678DD",
		TokenSyntaxString:   "#98C379",
		TokenSyntaxComment:  "#7F848E",
		TokenSyntaxBracket:  "#ABB2BF",
		TokenSyntaxNumber:   "#D19A66",
		TokenSyntaxFunction: "#61AFEF",
		TokenSyntaxType:     "#E5C07B",

		TokenGutterLineNumber: "#4B5263",
		TokenGutterActive:     "#ABB2BF",

		TokenStatusBarBg: "#21252B",
		TokenStatusBarFg: "#9DA5B4",
	},
}

// LightPreset mirrors the default scheme on a light background.
var LightPreset = Preset{
	Name:        "light",
	Description: "Light theme",
	Colors: map[ColorToken]string{
		TokenForeground:    "#383A42",
		TokenBackground:    "#FFFFFF",
		TokenSelection:     "#E5E5E6",
		TokenCursor:        "#526FFF",
		TokenLineHighlight: "#F2F2F2",

		TokenSyntaxKeyword:  "#A626A4",
		TokenSyntaxString:   "#50A14F",
		TokenSyntaxComment:  "#A0A1A7",
		TokenSyntaxBracket:  "#383A42",
		TokenSyntaxNumber:   "#986801",
		TokenSyntaxFunction: "#4078F2",
		TokenSyntaxType:     "#C18401",

		TokenGutterLineNumber: "#9D9D9F",
		TokenGutterActive:     "#383A42",

		TokenStatusBarBg: "#E5E5E6",
		TokenStatusBarFg: "#696C77",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha palette.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha",
	Colors: map[ColorToken]string{
		TokenForeground:    "#CDD6F4",
		TokenBackground:    "#1E1E2E",
		TokenSelection:     "#45475A",
		TokenCursor:        "#F5E0DC",
		TokenLineHighlight: "#313244",

		TokenSyntaxKeyword:  "#CBA6F7", // mauve
		TokenSyntaxString:   "#A6E3A1", // green
		TokenSyntaxComment:  "#6C7086", // overlay0
		TokenSyntaxBracket:  "#89B4FA", // blue
		TokenSyntaxNumber:   "#FAB387", // peach
		TokenSyntaxFunction: "#89B4FA", // blue
		TokenSyntaxType:     "#F9E2AF", // yellow

		TokenGutterLineNumber: "#45475A",
		TokenGutterActive:     "#CDD6F4",

		TokenStatusBarBg: "#181825",
		TokenStatusBarFg: "#A6ADC8",
	},
}
