package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeProvider is a scriptable Provider for tests.
type fakeProvider struct {
	out       string
	err       error
	callCount int
	lastText  string
	lastLang  string
}

func (f *fakeProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.callCount++
	f.lastText = text
	f.lastLang = targetLang
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func TestSynthesizer_Success(t *testing.T) {
	p := &fakeProvider{out: "polyfaq kya hai?"}
	s := NewSynthesizer(p, nil)

	out, ok := s.Synthesize(context.Background(), "What is polyfaq?", "hi")
	require.True(t, ok)
	require.Equal(t, "polyfaq kya hai?", out)
	require.Equal(t, 1, p.callCount)
	require.Equal(t, "hi", p.lastLang)
}

func TestSynthesizer_ProviderError_Fallback(t *testing.T) {
	p := &fakeProvider{err: errors.New("upstream timeout")}
	s := NewSynthesizer(p, nil)

	out, ok := s.Synthesize(context.Background(), "What is polyfaq?", "hi")
	require.False(t, ok)
	require.Equal(t, "What is polyfaq?", out)
}

func TestSynthesizer_EmptyOutput_Fallback(t *testing.T) {
	p := &fakeProvider{out: "  \n "}
	s := NewSynthesizer(p, nil)

	out, ok := s.Synthesize(context.Background(), "What is polyfaq?", "hi")
	require.False(t, ok)
	require.Equal(t, "What is polyfaq?", out)
}

func TestSynthesizer_NilProvider_Fallback(t *testing.T) {
	s := NewSynthesizer(nil, nil)

	out, ok := s.Synthesize(context.Background(), "What is polyfaq?", "hi")
	require.False(t, ok)
	require.Equal(t, "What is polyfaq?", out)
}

func TestSynthesizer_TrimsWhitespace(t *testing.T) {
	p := &fakeProvider{out: "\nanswer\n"}
	s := NewSynthesizer(p, nil)

	out, ok := s.Synthesize(context.Background(), "text", "bn")
	require.True(t, ok)
	require.Equal(t, "answer", out)
}
