package tkengine

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/logging"
)

const scratchTag = "keyedit-probe"

// Engine is a binding registry keyed by tag and canonical sequence.
// It is safe for concurrent use.
type Engine struct {
	parser *Parser
	cache  *parseCache

	mu       sync.Mutex
	bindings map[string]map[string]string
}

// New creates an engine for the given platform.
func New(platform entity.Platform) *Engine {
	return &Engine{
		parser:   NewParser(platform),
		cache:    newParseCache(defaultParseCacheSize),
		bindings: make(map[string]map[string]string),
	}
}

// Parse parses seq without binding it. Results are memoized.
func (e *Engine) Parse(seq string) (Sequence, error) {
	if r, ok := e.cache.get(seq); ok {
		return r.seq.clone(), r.err
	}
	parsed, err := e.parser.Parse(seq)
	e.cache.put(seq, parseResult{seq: parsed.clone(), err: err})
	return parsed, err
}

// Bind registers script for seq on tag, replacing any previous script.
func (e *Engine) Bind(tag, seq, script string) error {
	parsed, err := e.Parse(seq)
	if err != nil {
		return err
	}
	key := parsed.String()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bindings[tag] == nil {
		e.bindings[tag] = make(map[string]string)
	}
	e.bindings[tag][key] = script
	return nil
}

// Unbind removes the binding for seq on tag. Unknown bindings are ignored.
func (e *Engine) Unbind(tag, seq string) error {
	parsed, err := e.Parse(seq)
	if err != nil {
		return err
	}
	key := parsed.String()

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.bindings[tag], key)
	if len(e.bindings[tag]) == 0 {
		delete(e.bindings, tag)
	}
	return nil
}

// Accepts probes seq by binding it on a scratch tag and unbinding it again.
func (e *Engine) Accepts(ctx context.Context, seq string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.Bind(scratchTag, seq, ""); err != nil {
		var syntax *SyntaxError
		if errors.As(err, &syntax) {
			logging.FromContext(ctx).Debug().Str("sequence", seq).Str("reason", syntax.Msg).Msg("tk engine rejected sequence")
			return validation.NewEngineRejected(seq, syntax.Msg)
		}
		return err
	}
	return e.Unbind(scratchTag, seq)
}
