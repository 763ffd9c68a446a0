package syntax

// keywordSets maps a language tag to its keyword set. The tables are small
// static lookups built once; an unknown tag (including "plain") simply has
// no keywords, which degrades highlighting rather than failing it.
var keywordSets = map[string]map[string]bool{
	"rust": setOf(
		"fn", "let", "mut", "pub", "impl", "struct", "enum", "trait", "use", "mod",
		"match", "if", "else", "for", "while", "loop", "return", "self", "super", "where",
	),
	"javascript": setOf(
		"function", "var", "let", "const", "class", "import", "export", "from", "return",
		"if", "else", "for", "while", "switch", "case", "default", "break", "continue",
	),
	"go": setOf(
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
	),
}

func setOf(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Keywords returns the keyword set for a language tag, or nil when the
// language is unknown.
func Keywords(language string) map[string]bool {
	return keywordSets[language]
}

// Languages returns the tags with a keyword set, for CLI listings.
func Languages() []string {
	tags := make([]string, 0, len(keywordSets))
	for tag := range keywordSets {
		tags = append(tags, tag)
	}
	return tags
}

// DetectLanguage guesses a language tag from a filename extension. Unknown
// extensions map to "plain" (no keyword set).
func DetectLanguage(filename string) string {
	for ext, tag := range extensions {
		if len(filename) > len(ext) && filename[len(filename)-len(ext):] == ext {
			return tag
		}
	}
	return "plain"
}

var extensions = map[string]string{
	".rs":  "rust",
	".js":  "javascript",
	".mjs": "javascript",
	".ts":  "javascript",
	".go":  "go",
}
