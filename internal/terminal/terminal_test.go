package terminal

import (
	"flag"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-scene/internal/commands"
)

type memLog struct{ lines []string }

func (m *memLog) Log(line string)  { m.lines = append(m.lines, line) }
func (m *memLog) Lines() []string { return append([]string(nil), m.lines...) }

func newTerminal() (*Terminal, *memLog, *int) {
	log := &memLog{}
	reg := commands.NewRegistry()
	calls := new(int)
	reg.Register("ping", "", func(fs *flag.FlagSet) func() error {
		return func() error { *calls++; return nil }
	})
	t := New(log, reg)
	t.Toggle()
	return t, log, calls
}

func typeString(t *Terminal, s string) {
	for _, r := range s {
		t.Type(r)
	}
}

func TestTyping(t *testing.T) {
	term, _, _ := newTerminal()
	typeString(term, "ab`c\x01é")
	assert.Equal(t, "abcé", term.Input())
	term.Backspace()
	assert.Equal(t, "abc", term.Input())
	term.Paste("de\nignored")
	assert.Equal(t, "abcde", term.Input())
}

func TestClosedIgnoresKeys(t *testing.T) {
	term, _, _ := newTerminal()
	term.Toggle()
	assert.False(t, term.IsOpen())
	typeString(term, "abc")
	term.Paste("x")
	assert.Empty(t, term.Input())
}

func TestSubmit(t *testing.T) {
	term, log, calls := newTerminal()

	typeString(term, "cmd ping")
	require.NoError(t, term.Submit())
	assert.Equal(t, 1, *calls)
	assert.Empty(t, term.Input())

	typeString(term, "cmd nope")
	err := term.Submit()
	assert.ErrorIs(t, err, commands.ErrUnknown)

	typeString(term, "hello")
	require.NoError(t, term.Submit())

	require.NoError(t, term.Submit(), "empty line is a no-op")
	assert.Equal(t, []string{
		"> cmd ping",
		"> cmd nope",
		"unknown command: nope",
		"> hello",
		`commands start with "cmd " (try: cmd help)`,
	}, log.lines)
}

func TestHistory(t *testing.T) {
	term, _, _ := newTerminal()
	for _, line := range []string{"cmd ping", "cmd ping", "cmd a"} {
		typeString(term, line)
		_ = term.Submit()
	}
	term.HistoryNext()
	assert.Empty(t, term.Input())

	term.HistoryPrev()
	assert.Equal(t, "cmd a", term.Input())
	term.HistoryPrev()
	assert.Equal(t, "cmd ping", term.Input(), "repeated lines are stored once")
	term.HistoryPrev()
	assert.Equal(t, "cmd ping", term.Input())

	term.HistoryNext()
	assert.Equal(t, "cmd a", term.Input())
	term.HistoryNext()
	assert.Empty(t, term.Input())
}

func TestTail(t *testing.T) {
	term, log, _ := newTerminal()
	for i := 0; i < 5; i++ {
		log.Log(strings.Repeat("x", i))
	}
	log.Log(strings.Repeat("y", 300))

	tail := term.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "xxxx", tail[0])
	assert.Len(t, tail[1], maxLineLen)
	assert.True(t, strings.HasSuffix(tail[1], "..."))
	assert.Len(t, term.Tail(100), 6)
	assert.Equal(t, strings.Repeat("y", 300), log.lines[5], "log itself untouched")
}

func TestTail_CutsOnRuneBoundary(t *testing.T) {
	term, log, _ := newTerminal()
	// "é" is two bytes, so byte maxLineLen-3 falls inside a rune
	log.Log(strings.Repeat("é", 150))

	tail := term.Tail(1)
	require.Len(t, tail, 1)
	assert.True(t, utf8.ValidString(tail[0]))
	assert.True(t, strings.HasSuffix(tail[0], "..."))
	assert.LessOrEqual(t, len(tail[0]), maxLineLen)
}
