package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dereks/derex"
)

// recordingStepper captures every chunk Drive hands it, so tests can
// assert the full input was seen regardless of how Drive chunked it.
type recordingStepper struct {
	seen []byte
	done bool
	err  error
}

func (r *recordingStepper) Step(s *derex.Stream) derex.Step {
	r.seen = append(r.seen, s.Data...)
	s.Data = nil
	if s.EOF {
		r.done = true
		return derex.StepDone
	}
	return derex.StepContinue
}

func (r *recordingStepper) Err() error { return r.err }

func TestDriveConsumesWholeInput(t *testing.T) {
	want := strings.Repeat("abcdefgh", 100)
	r := &recordingStepper{}
	err := Drive(r, strings.NewReader(want), 7)
	require.NoError(t, err)
	assert.True(t, r.done)
	assert.Equal(t, want, string(r.seen))
}

type failingStepper struct{ err error }

func (f *failingStepper) Step(s *derex.Stream) derex.Step { return derex.StepContinue }
func (f *failingStepper) Err() error                      { return f.err }

func TestDrivePropagatesStepError(t *testing.T) {
	want := derex.ErrUnexpectedEOF
	f := &failingStepper{err: want}
	err := Drive(f, strings.NewReader("x"), 4)
	assert.ErrorIs(t, err, want)
}

func TestOpenStdinSentinel(t *testing.T) {
	rc, err := Open("-")
	require.NoError(t, err)
	defer rc.Close()
}
