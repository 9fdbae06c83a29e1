package entity

import (
	"strings"
)

// keysymByKeycap maps catalog key labels to engine keysym names.
var keysymByKeycap = map[string]string{
	"Space": "space",
	"~": "asciitilde", "!": "exclam", "@": "at", "#": "numbersign",
	"%": "percent", "^": "asciicircum", "&": "ampersand",
	"*": "asterisk", "(": "parenleft", ")": "parenright",
	"_": "underscore", "-": "minus", "+": "plus", "=": "equal",
	"{": "braceleft", "}": "braceright",
	"[": "bracketleft", "]": "bracketright", "|": "bar",
	";": "semicolon", ":": "colon", ",": "comma", ".": "period",
	"<": "less", ">": "greater", "/": "slash", "?": "question",
	"Page Up": "Prior", "Page Down": "Next",
	"Left Arrow": "Left", "Right Arrow": "Right",
	"Up Arrow": "Up", "Down Arrow": "Down", "Tab": "Tab",
}

// TranslateKey converts a keycap label into its "Key-<keysym>" token.
// Lowercase letters become uppercase when Shift is among modifiers, since
// the engine encodes shifted letters as uppercase keysyms.
func TranslateKey(key string, modifiers []string) string {
	if keysym, ok := keysymByKeycap[key]; ok {
		key = keysym
	}
	if isLowerASCIILetter(key) && containsModifier(modifiers, ModifierShift) {
		key = strings.ToUpper(key)
	}
	return "Key-" + key
}

func isLowerASCIILetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'z'
}

func containsModifier(modifiers []string, name string) bool {
	for _, m := range modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// FormatSequence wraps the ordered parts as "<a-b-c>".
func FormatSequence(parts []string) string {
	return "<" + strings.Join(parts, "-") + ">"
}

// SplitSequences splits a stored binding string into its separate sequences.
// "<Alt-v> <Meta-v>" yields two sequences.
func SplitSequences(keys string) []string {
	return strings.Fields(keys)
}
