package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock_StartsOnFirstRead(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(ft.now)
	assert.False(t, c.Running())

	assert.Equal(t, 0.0, c.ElapsedTime())
	assert.True(t, c.Running())

	ft.advance(1500 * time.Millisecond)
	assert.Equal(t, 1.5, c.ElapsedTime())
}

func TestClock_StartIsIdempotent(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWithSource(ft.now)
	c.Start()
	ft.advance(time.Second)
	c.Start()
	ft.advance(time.Second)
	assert.Equal(t, 2.0, c.ElapsedTime())
}

func TestClock_NeverDecreases(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWithSource(ft.now)
	c.Start()

	ft.advance(3 * time.Second)
	assert.Equal(t, 3.0, c.ElapsedTime())

	ft.advance(-2 * time.Second)
	assert.Equal(t, 3.0, c.ElapsedTime())

	ft.advance(4 * time.Second)
	assert.Equal(t, 5.0, c.ElapsedTime())
}
