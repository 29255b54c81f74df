// Package flip tracks the cosmetic rotation of cards between their two faces.
// The revealed flag on a card is always authoritative; a rotation only
// describes how far the drawing has caught up with it.
package flip

import (
	"math"
	"time"
)

// Rest angles, in degrees.
const (
	QuestionAngle = 0.0
	AnswerAngle   = 180.0
)

// Rest is the angle of a card that is not moving.
func Rest(revealed bool) float64 {
	if revealed {
		return AnswerAngle
	}
	return QuestionAngle
}

// Rotation is one card's progress from one angle to another.
type Rotation struct {
	From, To float64
	Elapsed  time.Duration
}

// Toward starts a rotation from the given angle to the rest angle of the new state.
func Toward(from float64, revealed bool) Rotation {
	return Rotation{From: from, To: Rest(revealed)}
}

// span scales the full half-turn duration by the distance left to cover,
// so reversing mid-flight does not take a whole half turn.
func (r Rotation) span(full time.Duration) time.Duration {
	return time.Duration(math.Abs(r.To-r.From) / 180 * float64(full))
}

func (r Rotation) Advance(dt time.Duration) Rotation {
	r.Elapsed += dt
	return r
}

func (r Rotation) Done(full time.Duration) bool {
	return r.Elapsed >= r.span(full)
}

// Angle is the eased angle after r.Elapsed.
func (r Rotation) Angle(full time.Duration) float64 {
	s := r.span(full)
	if s <= 0 || r.Elapsed >= s {
		return r.To
	}
	p := float64(r.Elapsed) / float64(s)
	return r.From + (r.To-r.From)*smoothstep(p)
}

func smoothstep(p float64) float64 { return p * p * (3 - 2*p) }

// Scale is the apparent width of a card turned by angle degrees around its
// vertical axis, in [0, 1].
func Scale(angle float64) float64 {
	return math.Abs(math.Cos(angle * math.Pi / 180))
}
