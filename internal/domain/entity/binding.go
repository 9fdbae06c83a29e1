package entity

import (
	"sort"
	"time"
)

// EntryMode selects how the candidate sequence is composed.
type EntryMode int

const (
	// EntryModeBasic builds the sequence from modifier toggles and a final key.
	EntryModeBasic EntryMode = iota
	// EntryModeAdvanced takes the raw sequence typed by the user.
	EntryModeAdvanced
)

// String returns the mode name.
func (m EntryMode) String() string {
	if m == EntryModeAdvanced {
		return "advanced"
	}
	return "basic"
}

// CandidateBinding is the in-progress basic selection.
type CandidateBinding struct {
	Modifiers []string // platform order
	FinalKey  string   // catalog label, empty when none picked
}

// Parts returns the sequence parts: modifiers then the translated final key.
func (c CandidateBinding) Parts() []string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	parts = append(parts, c.Modifiers...)
	if c.FinalKey != "" {
		parts = append(parts, TranslateKey(c.FinalKey, c.Modifiers))
	}
	return parts
}

// String renders the candidate as "<Mod-...-Key-X>".
func (c CandidateBinding) String() string {
	return FormatSequence(c.Parts())
}

// ExistingBindings is the caller-supplied list of sequence lists already bound
// to other commands. It is only read.
type ExistingBindings [][]string

// Contains reports whether seq equals, as a literal string, any bound sequence.
func (b ExistingBindings) Contains(seq string) bool {
	for _, list := range b {
		for _, s := range list {
			if s == seq {
				return true
			}
		}
	}
	return false
}

// Keyset maps an action name to its key sequences.
type Keyset map[string][]string

// Actions returns the action names sorted.
func (k Keyset) Actions() []string {
	actions := make([]string, 0, len(k))
	for action := range k {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// Existing flattens the keyset into ExistingBindings, in action order.
func (k Keyset) Existing() ExistingBindings {
	out := make(ExistingBindings, 0, len(k))
	for _, action := range k.Actions() {
		seqs := make([]string, len(k[action]))
		copy(seqs, k[action])
		out = append(out, seqs)
	}
	return out
}

// Clone returns a deep copy.
func (k Keyset) Clone() Keyset {
	out := make(Keyset, len(k))
	for action, seqs := range k {
		cp := make([]string, len(seqs))
		copy(cp, seqs)
		out[action] = cp
	}
	return out
}

// SharedSequence is a sequence bound to more than one action.
type SharedSequence struct {
	Sequence string
	Actions  []string
}

// SharedSequences lists sequences bound to several actions, sorted by sequence.
func (k Keyset) SharedSequences() []SharedSequence {
	byseq := make(map[string][]string)
	for _, action := range k.Actions() {
		seen := make(map[string]struct{}, len(k[action]))
		for _, seq := range k[action] {
			if _, dup := seen[seq]; dup {
				continue
			}
			seen[seq] = struct{}{}
			byseq[seq] = append(byseq[seq], action)
		}
	}
	var out []SharedSequence
	for seq, actions := range byseq {
		if len(actions) > 1 {
			out = append(out, SharedSequence{Sequence: seq, Actions: actions})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

// BindingChange records one accepted edit.
type BindingChange struct {
	ID        int64
	Keyset    string
	Action    string
	OldKeys   []string
	NewKeys   []string
	Mode      EntryMode
	CreatedAt time.Time
}
