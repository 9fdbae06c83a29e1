package config

import "strings"

const (
	// DefaultKeyset is the keyset edited when none is configured.
	DefaultKeyset = "classic"
	// MacKeyset is the classic keyset with Command and Option in place of Control and Alt.
	MacKeyset = "classic-mac"

	defaultVerifyConcurrency = 4
	defaultLogMaxSizeMB      = 10
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	classic := classicKeyset()
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    3,
			MaxAge:        7,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#22c55e",
				Border:         "#d4d4d8",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#4ade80",
				Border:         "#3f3f46",
			},
			ColorScheme: ThemeDefault,
		},
		Editor: EditorConfig{
			Engine:            EngineTk,
			Keyset:            DefaultKeyset,
			VerifyConcurrency: defaultVerifyConcurrency,
		},
		Keys: map[string]map[string][]string{
			DefaultKeyset: classic,
			MacKeyset:     macKeyset(classic),
		},
	}
}

func classicKeyset() map[string][]string {
	return map[string][]string{
		"copy":                        {"<Control-Key-c>", "<Control-Key-C>"},
		"cut":                         {"<Control-Key-x>", "<Control-Key-X>"},
		"paste":                       {"<Control-Key-v>", "<Control-Key-V>"},
		"beginning-of-line":           {"<Key-Home>"},
		"center-insert":               {"<Control-Key-l>", "<Control-Key-L>"},
		"close-all-windows":           {"<Control-Key-q>", "<Control-Key-Q>"},
		"close-window":                {"<Alt-Key-F4>", "<Meta-Key-F4>"},
		"do-nothing":                  {"<Control-Key-F12>"},
		"end-of-file":                 {"<Control-Key-d>", "<Control-Key-D>"},
		"python-docs":                 {"<Key-F1>"},
		"python-context-help":         {"<Shift-Key-F1>"},
		"history-next":                {"<Alt-Key-n>", "<Meta-Key-n>"},
		"history-previous":            {"<Alt-Key-p>", "<Meta-Key-p>"},
		"interrupt-execution":         {"<Control-Key-c>", "<Control-Key-C>"},
		"view-restart":                {"<Key-F6>"},
		"restart-shell":               {"<Control-Key-F6>"},
		"open-class-browser":          {"<Alt-Key-c>", "<Meta-Key-c>", "<Alt-Key-C>"},
		"open-module":                 {"<Alt-Key-m>", "<Meta-Key-m>", "<Alt-Key-M>"},
		"open-new-window":             {"<Control-Key-n>", "<Control-Key-N>"},
		"open-window-from-file":       {"<Control-Key-o>", "<Control-Key-O>"},
		"plain-newline-and-indent":    {"<Control-Key-j>", "<Control-Key-J>"},
		"print-window":                {"<Control-Key-p>", "<Control-Key-P>"},
		"redo":                        {"<Control-Shift-Key-Z>", "<Control-Shift-Key-z>"},
		"remove-selection":            {"<Key-Escape>"},
		"save-copy-of-window-as-file": {"<Alt-Shift-Key-S>"},
		"save-window-as-file":         {"<Control-Shift-Key-S>"},
		"save-window":                 {"<Control-Key-s>"},
		"select-all":                  {"<Control-Key-a>"},
		"toggle-auto-coloring":        {"<Control-Key-slash>"},
		"undo":                        {"<Control-Key-z>", "<Control-Key-Z>"},
		"find":                        {"<Control-Key-f>", "<Control-Key-F>"},
		"find-again":                  {"<Control-Key-g>", "<Key-F3>"},
		"find-in-files":               {"<Alt-Key-F3>", "<Meta-Key-F3>"},
		"find-selection":              {"<Control-Key-F3>"},
		"replace":                     {"<Control-Key-h>", "<Control-Key-H>"},
		"goto-line":                   {"<Alt-Key-g>", "<Meta-Key-g>"},
		"smart-backspace":             {"<Key-BackSpace>"},
		"newline-and-indent":          {"<Key-Return>", "<Key-KP_Enter>"},
		"smart-indent":                {"<Key-Tab>"},
		"indent-region":               {"<Control-Key-bracketright>"},
		"dedent-region":               {"<Control-Key-bracketleft>"},
		"comment-region":              {"<Alt-Key-3>", "<Meta-Key-3>"},
		"uncomment-region":            {"<Alt-Key-4>", "<Meta-Key-4>"},
		"tabify-region":               {"<Alt-Key-5>", "<Meta-Key-5>"},
		"untabify-region":             {"<Alt-Key-6>", "<Meta-Key-6>"},
		"toggle-tabs":                 {"<Alt-Key-t>", "<Meta-Key-t>", "<Alt-Key-T>"},
		"change-indentwidth":          {"<Alt-Key-u>", "<Meta-Key-u>", "<Alt-Key-U>"},
		"del-word-left":               {"<Control-Key-BackSpace>"},
		"del-word-right":              {"<Control-Key-Delete>"},
		"force-open-completions":      {"<Control-Key-space>"},
		"expand-word":                 {"<Alt-Key-slash>"},
		"force-open-calltip":          {"<Control-Key-backslash>"},
		"format-paragraph":            {"<Alt-Key-q>"},
		"flash-paren":                 {"<Control-Key-0>"},
		"run-module":                  {"<Key-F5>"},
		"run-custom":                  {"<Shift-Key-F5>"},
		"check-module":                {"<Alt-Key-x>"},
		"zoom-height":                 {"<Alt-Key-2>"},
	}
}

var macReplacer = strings.NewReplacer("<Control-", "<Command-", "-Control-", "-Command-", "<Alt-", "<Option-", "-Alt-", "-Option-")

// macKeyset derives the mac keyset, dropping sequences that become duplicates.
func macKeyset(classic map[string][]string) map[string][]string {
	out := make(map[string][]string, len(classic))
	for action, seqs := range classic {
		seen := make(map[string]bool, len(seqs))
		converted := make([]string, 0, len(seqs))
		for _, seq := range seqs {
			mac := macReplacer.Replace(seq)
			if seen[mac] {
				continue
			}
			seen[mac] = true
			converted = append(converted, mac)
		}
		out[action] = converted
	}
	return out
}
