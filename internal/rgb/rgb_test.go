package rgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Color{
		"#ffffff":  0xffffff,
		"#fff":     0xffffff,
		"#FF8000":  0xff8000,
		"0x00ff00": 0x00ff00,
		"  #123 ":  0x112233,
		"white":    0xffffff,
		"Coral":    0xff7f50,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "0x1234567", "notacolor"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalid, in)
	}
}

func TestChannels(t *testing.T) {
	c := FromBytes(0x12, 0x34, 0x56)
	assert.Equal(t, Color(0x123456), c)
	assert.Equal(t, uint8(0x34), c.Channel(1))

	c = c.WithChannel(0, 0xff)
	assert.Equal(t, Color(0xff3456), c)
	c = c.WithChannel(2, 0x00)
	assert.Equal(t, Color(0xff3400), c)

	f := Color(0xff0000).Floats()
	assert.Equal(t, [3]float32{1, 0, 0}, f)
}

func TestTextRoundTrip(t *testing.T) {
	text, err := Color(0xabcdef).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", string(text))

	var c Color
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, Color(0xabcdef), c)

	_, err = Color(0x1000000).MarshalText()
	assert.ErrorIs(t, err, ErrOutOfRange)
}
