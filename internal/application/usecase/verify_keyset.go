package usecase

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/logging"
)

const defaultVerifyConcurrency = 4

// SequenceProblem is one stored sequence the engine refuses.
type SequenceProblem struct {
	Action   string
	Sequence string
	Err      error
}

// VerifyKeysetOutput is the verification report of a keyset.
type VerifyKeysetOutput struct {
	Keyset   string
	Checked  int
	Problems []SequenceProblem
	Shared   []entity.SharedSequence
}

// OK reports whether every sequence was accepted.
func (o *VerifyKeysetOutput) OK() bool { return len(o.Problems) == 0 }

// VerifyKeysetUseCase probes every stored sequence against the host engine.
type VerifyKeysetUseCase struct {
	provider    port.KeybindingsProvider
	validator   port.HostBindingValidator
	concurrency int
}

// NewVerifyKeysetUseCase creates a new VerifyKeysetUseCase.
func NewVerifyKeysetUseCase(provider port.KeybindingsProvider, validator port.HostBindingValidator, concurrency int) *VerifyKeysetUseCase {
	if concurrency <= 0 {
		concurrency = defaultVerifyConcurrency
	}
	return &VerifyKeysetUseCase{provider: provider, validator: validator, concurrency: concurrency}
}

// Execute checks the named keyset, or the active one when name is empty.
func (uc *VerifyKeysetUseCase) Execute(ctx context.Context, name string) (*VerifyKeysetOutput, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	if uc.validator == nil {
		return nil, fmt.Errorf("host binding validator is nil")
	}
	name, err := resolveKeyset(ctx, uc.provider, name)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithKeyset(ctx, name)
	log := logging.FromContext(ctx)

	keyset, err := uc.provider.GetKeyset(ctx, name)
	if err != nil {
		return nil, err
	}

	type job struct{ action, seq string }
	var jobs []job
	for _, action := range keyset.Actions() {
		for _, seq := range keyset[action] {
			jobs = append(jobs, job{action: action, seq: seq})
		}
	}

	results := make([]error, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.validator.Accepts(gctx, j.seq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &VerifyKeysetOutput{Keyset: name, Checked: len(jobs), Shared: keyset.SharedSequences()}
	for i, err := range results {
		if err != nil {
			out.Problems = append(out.Problems, SequenceProblem{Action: jobs[i].action, Sequence: jobs[i].seq, Err: err})
		}
	}
	sort.SliceStable(out.Problems, func(a, b int) bool { return out.Problems[a].Action < out.Problems[b].Action })

	log.Debug().Int("checked", out.Checked).Int("problems", len(out.Problems)).Msg("keyset verified")
	return out, nil
}
