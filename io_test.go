package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessReader(t *testing.T) {
	var out bytes.Buffer
	r := newHeadlessReader(strings.NewReader("1\r\nyes\nno"), &out)

	for _, want := range []string{"1", "yes", "no"} {
		line, err := r.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	assert.Equal(t, "> > > ", out.String())

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestHeadlessReaderExhaustedInputFinishesGame(t *testing.T) {
	g, _, out := newTestGame(t, nil)
	r := newHeadlessReader(strings.NewReader("4\n"), &bytes.Buffer{})

	for i := 0; g.IsPlaying; i++ {
		require.Less(t, i, 10)
		line, err := r.ReadLine("> ")
		require.NoError(t, err)
		require.NoError(t, g.Feed(line))
	}
	assert.Equal(t, GameOver, g.State)
	assert.Contains(t, out.String(), "Game Over!")
	assert.Contains(t, out.String(), "The universe is indifferent.")
}

func TestHeadlessReaderDrivesGame(t *testing.T) {
	g, _, out := newTestGame(t, nil, 1, 0)
	r := newHeadlessReader(strings.NewReader("2\nyes\nno\n"), &bytes.Buffer{})

	for g.IsPlaying {
		line, err := r.ReadLine("> ")
		require.NoError(t, err)
		require.NoError(t, g.Feed(line))
	}
	assert.Equal(t, Win, g.State)
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestTerminalReaderFallbackKeepsBufferedInput(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { pr.Close() })
	_, err = pw.WriteString("a\nb\n")
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	var out bytes.Buffer
	r := newTerminalReader(-1, pr, &out)
	for _, want := range []string{"a", "b", ""} {
		line, err := r.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
}

func TestTerminalHistory(t *testing.T) {
	r := &terminalReader{}
	r.remember("")
	assert.Equal(t, 0, r.historyCount)

	r.remember("1")
	r.remember("1")
	r.remember("yes")
	assert.Equal(t, 2, r.historyCount)
	assert.Equal(t, "1", string(r.recall(0)))
	assert.Equal(t, "yes", string(r.recall(1)))
	assert.Nil(t, r.recall(2))

	for i := 0; i < MaxHistory; i++ {
		r.remember(strings.Repeat("x", i+1))
	}
	assert.Equal(t, MaxHistory+2, r.historyCount)
	assert.Nil(t, r.recall(1))
	assert.Equal(t, strings.Repeat("x", MaxHistory), string(r.recall(r.historyCount-1)))
}
