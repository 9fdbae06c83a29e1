package entity

import (
	"runtime"
	"strings"
)

// Platform identifies the windowing platform whose modifier names are used
// when composing key sequences.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)

// Modifier names understood by the binding engine.
const (
	ModifierShift   = "Shift"
	ModifierControl = "Control"
	ModifierAlt     = "Alt"
	ModifierOption  = "Option"
	ModifierCommand = "Command"
)

// CurrentPlatform returns the platform the binary runs on.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// ParsePlatform maps a GOOS-like name to a Platform.
// Anything that is neither darwin nor windows behaves like linux (X11 keysyms).
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "darwin", "mac", "macos":
		return PlatformDarwin
	case "windows", "win32":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// ModifierSet is the ordered list of modifier names for a platform.
// Key binding equality depends on this order, so stored keysets must use it too.
type ModifierSet []string

// ModifiersForPlatform returns a fresh copy of the platform modifier order.
func ModifiersForPlatform(p Platform) ModifierSet {
	if p == PlatformDarwin {
		return ModifierSet{ModifierShift, ModifierControl, ModifierOption, ModifierCommand}
	}
	return ModifierSet{ModifierControl, ModifierAlt, ModifierShift}
}

// Contains reports whether name is one of the set's modifiers.
func (s ModifierSet) Contains(name string) bool {
	for _, m := range s {
		if m == name {
			return true
		}
	}
	return false
}

// modifierLabels holds short display names.
var modifierLabels = map[string]string{
	ModifierControl: "Ctrl",
}

// ModifierLabel returns the display label for a modifier.
func ModifierLabel(name string) string {
	if label, ok := modifierLabels[name]; ok {
		return label
	}
	return name
}
