package flip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const half = 500 * time.Millisecond

func TestRotationEndpoints(t *testing.T) {
	t.Parallel()
	r := Toward(QuestionAngle, true)

	assert.InDelta(t, 0, r.Angle(half), 1e-9)
	assert.False(t, r.Done(half))

	r = r.Advance(half / 2)
	assert.InDelta(t, 90, r.Angle(half), 1e-9)

	r = r.Advance(half / 2)
	assert.True(t, r.Done(half))
	assert.InDelta(t, AnswerAngle, r.Angle(half), 1e-9)
}

func TestRotationPartialSpan(t *testing.T) {
	t.Parallel()
	// Reversing from 90 degrees only has a quarter turn to cover.
	r := Toward(90, false)
	r = r.Advance(half / 2)
	assert.True(t, r.Done(half))
	assert.InDelta(t, QuestionAngle, r.Angle(half), 1e-9)
}

func TestScale(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1, Scale(0), 1e-9)
	assert.InDelta(t, 0, Scale(90), 1e-9)
	assert.InDelta(t, 1, Scale(180), 1e-9)
}

func TestTrackerIndependentCards(t *testing.T) {
	t.Parallel()
	tr := NewTracker(half)

	tr.Flip(0, true)
	require.True(t, tr.Running())
	assert.InDelta(t, QuestionAngle, tr.Angle(0, true), 1e-9)
	assert.InDelta(t, QuestionAngle, tr.Angle(1, false), 1e-9)

	assert.True(t, tr.Advance(half/2))
	assert.InDelta(t, 90, tr.Angle(0, true), 1e-9)
	assert.InDelta(t, QuestionAngle, tr.Angle(1, false), 1e-9)

	assert.False(t, tr.Advance(half))
	assert.InDelta(t, AnswerAngle, tr.Angle(0, true), 1e-9)
}

func TestTrackerReverseMidFlight(t *testing.T) {
	t.Parallel()
	tr := NewTracker(half)

	tr.Flip(2, true)
	tr.Advance(half / 2) // at 90
	tr.Flip(2, false)

	assert.InDelta(t, 90, tr.Angle(2, false), 1e-9)
	tr.Advance(half / 4)
	assert.Less(t, tr.Angle(2, false), 90.0)
	tr.Advance(half)
	assert.False(t, tr.Running())
	assert.InDelta(t, QuestionAngle, tr.Angle(2, false), 1e-9)
}

func TestTrackerDisabled(t *testing.T) {
	t.Parallel()
	tr := NewTracker(0)
	tr.Flip(0, true)
	assert.False(t, tr.Running())
	assert.InDelta(t, AnswerAngle, tr.Angle(0, true), 1e-9)
}
