package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd light -x 1.5")
	assert.True(t, ok)
	assert.Equal(t, []string{"light", "-x", "1.5"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello")
	assert.False(t, ok)
	_, ok = Parse("CMD light")
	assert.False(t, ok)
}

func TestExecute_FreshFlagsEachRun(t *testing.T) {
	r := NewRegistry()
	var seen [][]string
	r.Register("light", "-x float", func(fs *flag.FlagSet) func() error {
		fs.Float64("x", 0, "")
		fs.Float64("y", 0, "")
		return func() error {
			var set []string
			fs.Visit(func(f *flag.Flag) { set = append(set, f.Name) })
			seen = append(seen, set)
			return nil
		}
	})

	require.NoError(t, r.Execute([]string{"light", "-x", "1"}))
	require.NoError(t, r.Execute([]string{"light", "-y", "2"}))
	assert.Equal(t, [][]string{{"x"}, {"y"}}, seen)
}

func TestExecute_Errors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "", func(fs *flag.FlagSet) func() error {
		return func() error { return boom }
	})

	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknown)
	assert.Error(t, r.Execute(nil))
	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.Error(t, r.Execute([]string{"fail", "-undefined"}))
}

func TestNamesAndUsage(t *testing.T) {
	r := NewRegistry()
	noop := func(fs *flag.FlagSet) func() error { return func() error { return nil } }
	r.Register("panel", "-show", noop)
	r.Register("light", "-x -y -z", noop)
	assert.Equal(t, []string{"light", "panel"}, r.Names())
	assert.Equal(t, []string{"light: -x -y -z", "panel: -show"}, r.Usage())
}
