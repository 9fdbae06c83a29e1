package tkengine

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// latin1Keysyms are the X11 names for the printable Latin-1 range.
var latin1Keysyms = []string{
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand",
	"apostrophe", "quoteright", "parenleft", "parenright", "asterisk", "plus", "comma",
	"minus", "period", "slash", "colon", "semicolon", "less", "equal", "greater",
	"question", "at", "bracketleft", "backslash", "bracketright", "asciicircum",
	"underscore", "grave", "quoteleft", "braceleft", "bar", "braceright", "asciitilde",
	"nobreakspace", "exclamdown", "cent", "sterling", "currency", "yen", "brokenbar",
	"section", "diaeresis", "copyright", "ordfeminine", "guillemotleft", "notsign",
	"hyphen", "registered", "macron", "degree", "plusminus", "twosuperior",
	"threesuperior", "acute", "mu", "paragraph", "periodcentered", "cedilla",
	"onesuperior", "masculine", "guillemotright", "onequarter", "onehalf",
	"threequarters", "questiondown", "Agrave", "Aacute", "Acircumflex", "Atilde",
	"Adiaeresis", "Aring", "AE", "Ccedilla", "Egrave", "Eacute", "Ecircumflex",
	"Ediaeresis", "Igrave", "Iacute", "Icircumflex", "Idiaeresis", "ETH", "Eth",
	"Ntilde", "Ograve", "Oacute", "Ocircumflex", "Otilde", "Odiaeresis", "multiply",
	"Ooblique", "Oslash", "Ugrave", "Uacute", "Ucircumflex", "Udiaeresis", "Yacute",
	"THORN", "Thorn", "ssharp", "agrave", "aacute", "acircumflex", "atilde",
	"adiaeresis", "aring", "ae", "ccedilla", "egrave", "eacute", "ecircumflex",
	"ediaeresis", "igrave", "iacute", "icircumflex", "idiaeresis", "eth", "ntilde",
	"ograve", "oacute", "ocircumflex", "otilde", "odiaeresis", "division", "oslash",
	"ooblique", "ugrave", "uacute", "ucircumflex", "udiaeresis", "yacute", "thorn",
	"ydiaeresis",
}

// functionKeysyms are the non-printing keys: editing, cursor motion, keypad and
// the modifier keys themselves.
var functionKeysyms = []string{
	"BackSpace", "Tab", "Linefeed", "Clear", "Return", "Pause", "Scroll_Lock",
	"Sys_Req", "Escape", "Delete", "Multi_key", "Kanji", "Home", "Left", "Up", "Right",
	"Down", "Prior", "Page_Up", "Next", "Page_Down", "End", "Begin", "Select", "Print",
	"Execute", "Insert", "Undo", "Redo", "Menu", "Find", "Cancel", "Help", "Break",
	"Mode_switch", "script_switch", "Num_Lock", "ISO_Left_Tab",
	"KP_Space", "KP_Tab", "KP_Enter", "KP_F1", "KP_F2", "KP_F3", "KP_F4", "KP_Home",
	"KP_Left", "KP_Up", "KP_Right", "KP_Down", "KP_Prior", "KP_Page_Up", "KP_Next",
	"KP_Page_Down", "KP_End", "KP_Begin", "KP_Insert", "KP_Delete", "KP_Equal",
	"KP_Multiply", "KP_Add", "KP_Separator", "KP_Subtract", "KP_Decimal", "KP_Divide",
	"Shift_L", "Shift_R", "Control_L", "Control_R", "Caps_Lock", "Shift_Lock", "Meta_L",
	"Meta_R", "Alt_L", "Alt_R", "Super_L", "Super_R", "Hyper_L", "Hyper_R",
	"App", "Win_L", "Win_R",
}

var keysyms = buildKeysymTable()

func buildKeysymTable() map[string]struct{} {
	table := make(map[string]struct{}, 512)
	add := func(names ...string) {
		for _, n := range names {
			table[n] = struct{}{}
		}
	}
	add(latin1Keysyms...)
	add(functionKeysyms...)
	for c := 'a'; c <= 'z'; c++ {
		add(string(c), strings.ToUpper(string(c)))
	}
	for c := '0'; c <= '9'; c++ {
		add(string(c))
		add("KP_" + string(c))
	}
	for i := 1; i <= 35; i++ {
		add("F" + strconv.Itoa(i))
	}
	return table
}

// IsKeysym reports whether name is a known keysym. Names are case-sensitive.
// Unicode keysyms of the form "U+hhhh" or "Uhhhh" are accepted.
func IsKeysym(name string) bool {
	if _, ok := keysyms[name]; ok {
		return true
	}
	return isUnicodeKeysym(name)
}

func isUnicodeKeysym(name string) bool {
	if len(name) < 2 || name[0] != 'U' {
		return false
	}
	hex := strings.TrimPrefix(name[1:], "+")
	if len(hex) < 4 || len(hex) > 6 {
		return false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	return err == nil && v <= utf8.MaxRune
}
