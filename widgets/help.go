package widgets

import "strings"

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

// RenderHelpLine formats bindings on one line: "a-l:play  esc:quit"
func RenderHelpLine(bindings []KeyBinding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Key + ":" + b.Desc
	}
	return strings.Join(parts, "  ")
}
