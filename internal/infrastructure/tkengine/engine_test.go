package tkengine_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/infrastructure/tkengine"
)

func TestEngine_Accepts(t *testing.T) {
	e := tkengine.New(entity.PlatformLinux)
	ctx := context.Background()

	require.NoError(t, e.Accepts(ctx, "<Control-Key-a>"))
	assert.Empty(t, tkengine.Bound(e, "keyedit-probe"), "probe binding must be removed")

	err := e.Accepts(ctx, "<Control-Key-Foo>")
	require.ErrorIs(t, err, validation.ErrEngineRejected)
	assert.Equal(t,
		"The entered key sequence is not accepted.\n\nError: bad event type or keysym \"Foo\"",
		validation.Message(err))
}

func TestEngine_AcceptsCanceled(t *testing.T) {
	e := tkengine.New(entity.PlatformLinux)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Accepts(ctx, "<Key-F5>"), context.Canceled)
}

func TestEngine_BindUnbind(t *testing.T) {
	e := tkengine.New(entity.PlatformLinux)

	require.NoError(t, e.Bind("Text", "<Control-Key-c>", "copy"))
	require.NoError(t, e.Bind("Text", "<Control-c>", "copy-again"))
	require.NoError(t, e.Bind("Text", "<Key-F5>", "run"))
	assert.Equal(t, []string{"<Control-KeyPress-c>", "<KeyPress-F5>"}, tkengine.Bound(e, "Text"))

	require.NoError(t, e.Unbind("Text", "<Control-KeyPress-c>"))
	assert.Equal(t, []string{"<KeyPress-F5>"}, tkengine.Bound(e, "Text"))

	require.NoError(t, e.Unbind("Text", "<Key-F6>"))
	assert.Error(t, e.Bind("Text", "<Bogus>", ""))
}

func TestEngine_ConcurrentProbes(t *testing.T) {
	e := tkengine.New(entity.PlatformLinux)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 24; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, e.Accepts(ctx, fmt.Sprintf("<Control-Key-F%d>", n)))
		}(i)
	}
	wg.Wait()
	assert.Empty(t, tkengine.Bound(e, "keyedit-probe"))
}
