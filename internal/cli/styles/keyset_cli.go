package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
)

// KeysetCLIRenderer renders non-interactive output for the keyset subcommands
// (e.g. `keyedit list`, `check`, `verify`, `history`).
type KeysetCLIRenderer struct {
	theme *Theme
}

func NewKeysetCLIRenderer(theme *Theme) *KeysetCLIRenderer {
	return &KeysetCLIRenderer{theme: theme}
}

func (r *KeysetCLIRenderer) RenderKeysets(names []string, active string) string {
	if len(names) == 0 {
		return r.theme.Subtle.Render("No keysets configured.")
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Keysets"))
	b.WriteString("\n\n")
	for _, name := range names {
		marker, style := " ", r.theme.Normal
		if name == active {
			marker, style = "●", r.theme.Highlight
		}
		fmt.Fprintf(&b, "%s %s\n", r.theme.Highlight.Render(marker), style.Render(name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *KeysetCLIRenderer) RenderKeyset(view port.KeysetView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n\n",
		r.theme.Highlight.Render(IconKeyboard),
		r.theme.Title.Render(view.Name),
		r.theme.MutedBadge(fmt.Sprintf("%d actions", len(view.Bindings))),
	)

	width := 0
	for _, e := range view.Bindings {
		width = max(width, len(e.Action))
	}
	for _, e := range view.Bindings {
		shared := "  "
		if e.Shared {
			shared = r.theme.WarningStyle.Render(IconLink) + " "
		}
		keys := strings.Join(e.Sequences, " ")
		if keys == "" {
			keys = r.theme.Subtle.Render("(unbound)")
		}
		fmt.Fprintf(&b, "  %-*s %s%s\n", width, e.Action, shared, keys)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *KeysetCLIRenderer) RenderCheck(out usecase.CheckSequenceOutput) string {
	seq := r.theme.Highlight.Render(out.Sequence)
	mode := r.theme.MutedBadge(out.Mode.String())
	if out.Accepted() {
		return fmt.Sprintf("%s %s %s accepted", r.theme.SuccessStyle.Render(IconCheck), seq, mode)
	}
	return fmt.Sprintf("%s %s %s\n\n%s\n%s",
		r.theme.ErrorStyle.Render(IconX), seq, mode,
		r.theme.ErrorStyle.Bold(true).Render(validation.ErrorTitle),
		validation.Message(out.Err),
	)
}

func (r *KeysetCLIRenderer) RenderVerify(out *usecase.VerifyKeysetOutput) string {
	var b strings.Builder
	if out.OK() {
		fmt.Fprintf(&b, "%s %s: %d sequences accepted",
			r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(out.Keyset), out.Checked)
	} else {
		fmt.Fprintf(&b, "%s %s: %d of %d sequences rejected\n",
			r.theme.ErrorStyle.Render(IconX), r.theme.Highlight.Render(out.Keyset), len(out.Problems), out.Checked)
		for _, p := range out.Problems {
			reason := p.Err.Error()
			var rejected *validation.EngineRejectedError
			if errors.As(p.Err, &rejected) {
				reason = rejected.Reason
			}
			fmt.Fprintf(&b, "\n  %s %s\n    %s", r.theme.Normal.Render(p.Action), r.theme.Highlight.Render(p.Sequence), r.theme.Subtle.Render(reason))
		}
	}

	if len(out.Shared) > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.theme.WarningStyle.Render(IconLink + " Shared sequences"))
		for _, s := range out.Shared {
			fmt.Fprintf(&b, "\n  %s %s", r.theme.Highlight.Render(s.Sequence), r.theme.Subtle.Render(strings.Join(s.Actions, ", ")))
		}
	}
	return b.String()
}

func (r *KeysetCLIRenderer) RenderHistory(changes []*entity.BindingChange) string {
	if len(changes) == 0 {
		return r.theme.Subtle.Render("No keybinding changes recorded.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.theme.Highlight.Render(IconClock), r.theme.Title.Render("Recent changes"))
	for _, c := range changes {
		old := strings.Join(c.OldKeys, " ")
		if old == "" {
			old = "(unbound)"
		}
		fmt.Fprintf(&b, "  %s  %s %s\n    %s %s %s\n",
			r.theme.Subtle.Render(RelativeTime(c.CreatedAt)),
			r.theme.Normal.Render(c.Keyset+"/"+c.Action),
			r.theme.MutedBadge(c.Mode.String()),
			r.theme.Subtle.Render(old),
			r.theme.Highlight.Render(IconArrow),
			r.theme.Normal.Render(strings.Join(c.NewKeys, " ")),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *KeysetCLIRenderer) RenderSaved(keyset, action string, keys []string) string {
	return fmt.Sprintf("%s %s/%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(keyset),
		r.theme.Highlight.Render(action),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Normal.Render(strings.Join(keys, " ")),
	)
}

func (r *KeysetCLIRenderer) RenderCanceled() string {
	return r.theme.Subtle.Render("No change.")
}

func (r *KeysetCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
