package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestEditor_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "Save uses ctrl+s",
			binding:  Editor.Save,
			expected: []string{"ctrl+s"},
		},
		{
			name:     "Reload uses ctrl+r",
			binding:  Editor.Reload,
			expected: []string{"ctrl+r"},
		},
		{
			name:     "Quit uses ctrl+q and ctrl+c",
			binding:  Editor.Quit,
			expected: []string{"ctrl+q", "ctrl+c"},
		},
		{
			name:     "Help uses f1 and ctrl+g",
			binding:  Editor.Help,
			expected: []string{"f1", "ctrl+g"},
		},
		{
			name:     "CycleTheme uses ctrl+t",
			binding:  Editor.CycleTheme,
			expected: []string{"ctrl+t"},
		},
		{
			name:     "Home includes ctrl+a",
			binding:  Editor.Home,
			expected: []string{"home", "ctrl+a"},
		},
		{
			name:     "End includes ctrl+e",
			binding:  Editor.End,
			expected: []string{"end", "ctrl+e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestEditor_HelpText(t *testing.T) {
	help := Editor.Save.Help()
	require.Equal(t, "ctrl+s", help.Key)
	require.Equal(t, "save file", help.Desc)
}

func TestEditor_FullHelpCoversAllBindings(t *testing.T) {
	groups := DefaultEditorKeyMap().FullHelp()
	require.Len(t, groups, 4)

	var total int
	for _, group := range groups {
		total += len(group)
	}
	require.Equal(t, 17, total, "every binding should appear in full help")
}

func TestEditor_ShortHelp(t *testing.T) {
	short := DefaultEditorKeyMap().ShortHelp()
	require.Len(t, short, 3)
}
