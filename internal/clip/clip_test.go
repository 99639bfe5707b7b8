package clip

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err   error
	calls []string
}

func (f *fakeWriter) WriteAll(text string) error {
	f.calls = append(f.calls, text)
	return f.err
}

func TestOSC52_WritesEncodedSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OSC52{Out: &buf}.WriteAll("1 cup rice"))

	encoded := base64.StdEncoding.EncodeToString([]byte("1 cup rice"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)
}

func TestOSC52_TmuxWrapping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OSC52{Out: &buf, Multiplexer: "tmux"}.WriteAll("rice"))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestChain_StopsAtFirstSuccess(t *testing.T) {
	failing := &fakeWriter{err: errors.New("no xclip")}
	ok := &fakeWriter{}
	never := &fakeWriter{}

	require.NoError(t, Chain{failing, ok, never}.WriteAll("soup"))
	assert.Equal(t, []string{"soup"}, failing.calls)
	assert.Equal(t, []string{"soup"}, ok.calls)
	assert.Empty(t, never.calls)
}

func TestChain_JoinsErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	err := Chain{&fakeWriter{err: first}, &fakeWriter{err: second}}.WriteAll("soup")
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)

	assert.Error(t, Chain{}.WriteAll("soup"))
}

func TestNew_Modes(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")
	var buf bytes.Buffer

	w, err := New(ModeSystem, &buf)
	require.NoError(t, err)
	assert.IsType(t, System{}, w)

	w, err = New(ModeOSC52, &buf)
	require.NoError(t, err)
	assert.Equal(t, OSC52{Out: &buf}, w)

	w, err = New(ModeAuto, &buf)
	require.NoError(t, err)
	chain, ok := w.(Chain)
	require.True(t, ok)
	assert.Len(t, chain, 2)

	_, err = New("carrier-pigeon", &buf)
	assert.Error(t, err)
}

func TestNew_DetectsTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	w, err := New(ModeOSC52, nil)
	require.NoError(t, err)
	assert.Equal(t, "tmux", w.(OSC52).Multiplexer)
}
