package generation

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller scripts one outcome per candidate model and records the order
// in which models were attempted.
type fakeCaller struct {
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func (f *fakeCaller) GenerateText(ctx context.Context, model string, prompt Prompt) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errors[model]; ok {
		return "", err
	}
	return f.responses[model], nil
}

func newTestResolver(t *testing.T, caller ModelCaller, models []string) *Resolver {
	t.Helper()
	r, err := NewResolver(caller, models, time.Millisecond, slog.Default())
	require.NoError(t, err, "NewResolver should accept a valid configuration")
	return r
}

func TestResolverFirstCandidateSucceeds(t *testing.T) {
	caller := &fakeCaller{responses: map[string]string{"model-a": "raw output"}}
	r := newTestResolver(t, caller, []string{"model-a", "model-b"})

	text, err := r.Resolve(context.Background(), Prompt{UserPrompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "raw output", text)
	assert.Equal(t, []string{"model-a"}, caller.calls,
		"No further candidates should be attempted after a success")
}

func TestResolverFallsBackInDeclaredOrder(t *testing.T) {
	caller := &fakeCaller{
		errors: map[string]error{
			"model-a": errors.New("the model is overloaded"),
			"model-b": errors.New("503 service unavailable"),
		},
		responses: map[string]string{"model-c": "third time lucky"},
	}
	r := newTestResolver(t, caller, []string{"model-a", "model-b", "model-c"})

	text, err := r.Resolve(context.Background(), Prompt{UserPrompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "third time lucky", text)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, caller.calls,
		"Candidates must be attempted strictly in the declared order")
}

func TestResolverFatalErrorShortCircuits(t *testing.T) {
	fatal := errors.New("API key not valid")
	caller := &fakeCaller{
		errors:    map[string]error{"model-a": fatal},
		responses: map[string]string{"model-b": "never reached"},
	}
	r := newTestResolver(t, caller, []string{"model-a", "model-b"})

	_, err := r.Resolve(context.Background(), Prompt{UserPrompt: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, fatal, "The first non-transient error must propagate unchanged")
	assert.Equal(t, []string{"model-a"}, caller.calls,
		"A non-transient failure must not trigger further candidates")

	var unavailable *ModelsUnavailableError
	assert.False(t, errors.As(err, &unavailable),
		"A fatal failure is not an exhaustion failure")
}

func TestResolverExhaustionCarriesLastTransientError(t *testing.T) {
	lastErr := errors.New("model-c not found")
	caller := &fakeCaller{
		errors: map[string]error{
			"model-a": errors.New("503"),
			"model-b": errors.New("service unavailable"),
			"model-c": lastErr,
		},
	}
	r := newTestResolver(t, caller, []string{"model-a", "model-b", "model-c"})

	_, err := r.Resolve(context.Background(), Prompt{UserPrompt: "p"})

	require.Error(t, err)
	var unavailable *ModelsUnavailableError
	require.ErrorAs(t, err, &unavailable, "Exhaustion must surface as ModelsUnavailableError")
	assert.Equal(t, lastErr, unavailable.LastErr,
		"The exhaustion error must carry the final candidate's error")
	assert.Contains(t, err.Error(), "model-c not found",
		"The error text should name the last underlying error")
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, caller.calls)
}

func TestResolverTransientStatusCodeOnProviderError(t *testing.T) {
	caller := &fakeCaller{
		errors: map[string]error{
			"model-a": &ProviderError{StatusCode: 503, Message: "try later"},
		},
		responses: map[string]string{"model-b": "recovered"},
	}
	r := newTestResolver(t, caller, []string{"model-a", "model-b"})

	text, err := r.Resolve(context.Background(), Prompt{UserPrompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
}

func TestResolverContextCancelledDuringPause(t *testing.T) {
	caller := &fakeCaller{
		errors: map[string]error{
			"model-a": errors.New("overloaded"),
		},
		responses: map[string]string{"model-b": "unreachable"},
	}
	r, err := NewResolver(caller, []string{"model-a", "model-b"}, time.Minute, slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err = r.Resolve(ctx, Prompt{UserPrompt: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"model-a"}, caller.calls,
		"Cancellation during the pause must not start the next attempt")
}

func TestNewResolverValidation(t *testing.T) {
	t.Run("nil caller rejected", func(t *testing.T) {
		_, err := NewResolver(nil, nil, 0, slog.Default())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil logger rejected", func(t *testing.T) {
		_, err := NewResolver(&fakeCaller{}, nil, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty model list falls back to defaults", func(t *testing.T) {
		r, err := NewResolver(&fakeCaller{}, nil, 0, slog.Default())
		require.NoError(t, err)
		assert.Equal(t, DefaultModels, r.models)
		assert.Equal(t, DefaultFallbackPause, r.pause)
	})
}

func TestIsTransient(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"503 substring", errors.New("got 503 from upstream"), true},
		{"overloaded substring", errors.New("The model is OVERLOADED right now"), true},
		{"unavailable substring", errors.New("Service Unavailable"), true},
		{"not found substring", errors.New("model Not Found"), true},
		{"404 substring", errors.New("http 404"), true},
		{"provider error 503", &ProviderError{StatusCode: 503, Message: "busy"}, true},
		{"provider error 404", &ProviderError{StatusCode: 404, Message: "gone"}, true},
		{"provider error 400", &ProviderError{StatusCode: 400, Message: "bad request"}, false},
		{"provider error 429", &ProviderError{StatusCode: 429, Message: "quota exceeded"}, false},
		{"auth failure", errors.New("API key not valid"), false},
		{"wrapped transient", &ModelsUnavailableError{LastErr: errors.New("overloaded")}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTransient(tc.err))
		})
	}
}
