package port

import "context"

// HostBindingValidator asks the host binding engine whether a candidate
// sequence is acceptable. Implementations probe by registering a scratch
// binding and removing it right away.
//
// A rejection is reported as *validation.EngineRejectedError carrying the
// engine's own message.
type HostBindingValidator interface {
	Accepts(ctx context.Context, sequence string) error
}

// HostBindingValidatorFunc adapts a function to HostBindingValidator.
type HostBindingValidatorFunc func(ctx context.Context, sequence string) error

// Accepts calls f.
func (f HostBindingValidatorFunc) Accepts(ctx context.Context, sequence string) error {
	return f(ctx, sequence)
}
