// Package tkengine implements a Tk-style binding engine: it parses event
// sequences the way the Tk bind command does and keeps a registry of bindings.
package tkengine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/keyedit/internal/domain/entity"
)

type eventFlags int

const (
	flagKey eventFlags = 1 << iota
	flagButton
	flagOther
)

// eventTypes maps event names to their canonical name and flags.
var eventTypes = map[string]struct {
	canonical string
	flags     eventFlags
}{
	"Key":              {"KeyPress", flagKey},
	"KeyPress":         {"KeyPress", flagKey},
	"KeyRelease":       {"KeyRelease", flagKey},
	"MouseWheel":       {"MouseWheel", flagKey},
	"Button":           {"ButtonPress", flagButton},
	"ButtonPress":      {"ButtonPress", flagButton},
	"ButtonRelease":    {"ButtonRelease", flagButton},
	"Motion":           {"Motion", flagButton},
	"Enter":            {"Enter", flagOther},
	"Leave":            {"Leave", flagOther},
	"FocusIn":          {"FocusIn", flagOther},
	"FocusOut":         {"FocusOut", flagOther},
	"Expose":           {"Expose", flagOther},
	"Visibility":       {"Visibility", flagOther},
	"Destroy":          {"Destroy", flagOther},
	"Unmap":            {"Unmap", flagOther},
	"Map":              {"Map", flagOther},
	"Reparent":         {"Reparent", flagOther},
	"Configure":        {"Configure", flagOther},
	"Gravity":          {"Gravity", flagOther},
	"Circulate":        {"Circulate", flagOther},
	"Property":         {"Property", flagOther},
	"Colormap":         {"Colormap", flagOther},
	"Activate":         {"Activate", flagOther},
	"Deactivate":       {"Deactivate", flagOther},
	"CirculateRequest": {"CirculateRequest", flagOther},
	"ConfigureRequest": {"ConfigureRequest", flagOther},
	"Create":           {"Create", flagOther},
	"MapRequest":       {"MapRequest", flagOther},
	"ResizeRequest":    {"ResizeRequest", flagOther},
}

// commonModifiers maps modifier names, aliases included, to canonical names.
var commonModifiers = map[string]string{
	"Control":   "Control",
	"Shift":     "Shift",
	"Lock":      "Lock",
	"Meta":      "Meta",
	"M":         "Meta",
	"Alt":       "Alt",
	"Extended":  "Extended",
	"Mod1":      "Mod1",
	"M1":        "Mod1",
	"Mod2":      "Mod2",
	"M2":        "Mod2",
	"Mod3":      "Mod3",
	"M3":        "Mod3",
	"Mod4":      "Mod4",
	"M4":        "Mod4",
	"Mod5":      "Mod5",
	"M5":        "Mod5",
	"Button1":   "Button1",
	"B1":        "Button1",
	"Button2":   "Button2",
	"B2":        "Button2",
	"Button3":   "Button3",
	"B3":        "Button3",
	"Button4":   "Button4",
	"B4":        "Button4",
	"Button5":   "Button5",
	"B5":        "Button5",
	"Double":    "Double",
	"Triple":    "Triple",
	"Quadruple": "Quadruple",
	"Any":       "Any",
}

var darwinModifiers = map[string]string{
	"Command": "Command",
	"Option":  "Option",
}

// Pattern is one parsed event pattern.
type Pattern struct {
	Modifiers []string // canonical names, in input order
	Event     string   // canonical event type, empty for virtual events
	Detail    string   // keysym or button number, may be empty
	Virtual   string   // virtual event name without brackets
}

// String renders the pattern in canonical form.
func (p Pattern) String() string {
	if p.Virtual != "" {
		return "<<" + p.Virtual + ">>"
	}
	parts := append([]string(nil), p.Modifiers...)
	parts = append(parts, p.Event)
	if p.Detail != "" {
		parts = append(parts, p.Detail)
	}
	return "<" + strings.Join(parts, "-") + ">"
}

// IsKey reports whether the pattern is a key press carrying a keysym.
func (p Pattern) IsKey() bool {
	return p.Event == "KeyPress" && p.Detail != ""
}

// Sequence is a parsed event sequence.
type Sequence []Pattern

// String renders the sequence in canonical form.
func (s Sequence) String() string {
	var b strings.Builder
	for _, p := range s {
		b.WriteString(p.String())
	}
	return b.String()
}

// clone returns a copy sharing no slices with s.
func (s Sequence) clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, p := range s {
		out[i] = p
		out[i].Modifiers = append([]string(nil), p.Modifiers...)
	}
	return out
}

// SyntaxError is a sequence the engine refuses. Msg reads like Tk's own error.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Parser parses event sequences for one platform.
type Parser struct {
	modifiers map[string]string
}

// NewParser creates a parser. Command and Option are only known on darwin.
func NewParser(platform entity.Platform) *Parser {
	mods := make(map[string]string, len(commonModifiers)+len(darwinModifiers))
	for k, v := range commonModifiers {
		mods[k] = v
	}
	if platform == entity.PlatformDarwin {
		for k, v := range darwinModifiers {
			mods[k] = v
		}
	}
	return &Parser{modifiers: mods}
}

// Parse parses a whole sequence. A failure is returned as *SyntaxError.
func (p *Parser) Parse(seq string) (Sequence, error) {
	var out Sequence
	rest := seq
	for rest != "" {
		pat, next, err := p.parsePattern(rest)
		if err != nil {
			return nil, err
		}
		if pat.Virtual != "" && (len(out) > 0 || next != "") {
			return nil, syntaxErrorf("virtual events may not be composed")
		}
		out = append(out, pat)
		rest = next
	}
	if len(out) == 0 {
		return nil, syntaxErrorf("no events specified in binding")
	}
	return out, nil
}

func (p *Parser) parsePattern(s string) (Pattern, string, error) {
	if s[0] != '<' {
		return parseCharacter(s)
	}
	if strings.HasPrefix(s, "<<") {
		return parseVirtual(s)
	}

	var pat Pattern
	rest := s[1:]
	field, rest := getField(rest)
	for {
		if strings.HasPrefix(rest, ">") {
			break
		}
		canonical, ok := p.modifiers[field]
		if !ok {
			break
		}
		pat.Modifiers = append(pat.Modifiers, canonical)
		rest = skipSeparators(rest)
		field, rest = getField(rest)
	}

	var flags eventFlags
	if ev, ok := eventTypes[field]; ok {
		pat.Event = ev.canonical
		flags = ev.flags
		rest = skipSeparators(rest)
		field, rest = getField(rest)
	}

	switch {
	case field != "":
		isButton := len(field) == 1 && field[0] >= '1' && field[0] <= '5'
		switch {
		case isButton && flags == 0:
			pat.Event = "ButtonPress"
			pat.Detail = field
		case isButton && flags&flagButton != 0:
			pat.Detail = field
		case isButton && flags&flagKey == 0:
			return Pattern{}, "", syntaxErrorf("specified button %q for non-button event", field)
		default:
			if !IsKeysym(field) {
				return Pattern{}, "", syntaxErrorf("bad event type or keysym %q", field)
			}
			if flags == 0 {
				pat.Event = "KeyPress"
			} else if flags&flagKey == 0 {
				return Pattern{}, "", syntaxErrorf("specified keysym %q for non-key event", field)
			}
			pat.Detail = field
		}
	case flags == 0:
		return Pattern{}, "", syntaxErrorf("no event type or button # or keysym")
	}

	rest = skipSeparators(rest)
	if !strings.HasPrefix(rest, ">") {
		if strings.Contains(rest, ">") {
			return Pattern{}, "", syntaxErrorf("extra characters after detail in binding")
		}
		return Pattern{}, "", syntaxErrorf("missing \">\" in binding")
	}
	return pat, rest[1:], nil
}

// parseCharacter handles a bare character, which stands for a key press of
// that character.
func parseCharacter(s string) (Pattern, string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return Pattern{}, "", syntaxErrorf("bad ASCII character 0x%x", s[0])
	}
	detail := string(r)
	if name, ok := charKeysym(r); ok {
		detail = name
	}
	return Pattern{Event: "KeyPress", Detail: detail}, s[size:], nil
}

func parseVirtual(s string) (Pattern, string, error) {
	end := strings.IndexByte(s[2:], '>')
	if end < 0 || !strings.HasPrefix(s[2+end:], ">>") {
		return Pattern{}, "", syntaxErrorf("missing \">\" in virtual binding")
	}
	name := s[2 : 2+end]
	if name == "" {
		return Pattern{}, "", syntaxErrorf("virtual event \"<<>>\" is badly formed")
	}
	return Pattern{Virtual: name}, s[2+end+2:], nil
}

// getField returns the leading run of s up to a separator or '>'.
func getField(s string) (field, rest string) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '>' || r == '-' || unicode.IsSpace(r)
	})
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func skipSeparators(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
}

// charKeysym names the keysym of a printable ASCII punctuation character.
func charKeysym(r rune) (string, bool) {
	if r < 0x20 || r > 0x7e {
		return "", false
	}
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return string(r), true
	}
	name, ok := asciiPunctuation[r]
	return name, ok
}

var asciiPunctuation = map[rune]string{
	' ': "space", '!': "exclam", '"': "quotedbl", '#': "numbersign", '$': "dollar",
	'%': "percent", '&': "ampersand", '\'': "apostrophe", '(': "parenleft",
	')': "parenright", '*': "asterisk", '+': "plus", ',': "comma", '-': "minus",
	'.': "period", '/': "slash", ':': "colon", ';': "semicolon", '<': "less",
	'=': "equal", '>': "greater", '?': "question", '@': "at", '[': "bracketleft",
	'\\': "backslash", ']': "bracketright", '^': "asciicircum", '_': "underscore",
	'`': "grave", '{': "braceleft", '|': "bar", '}': "braceright", '~': "asciitilde",
}
