package flip

import "time"

// Tracker holds the rotations of cards that are still moving, keyed by card
// index. A card with no entry is at rest on its current face.
type Tracker struct {
	duration time.Duration
	active   map[int]Rotation
}

// NewTracker returns a tracker whose half turn takes d. A non-positive d
// disables animation: every card is always drawn at rest.
func NewTracker(d time.Duration) *Tracker {
	return &Tracker{duration: d, active: map[int]Rotation{}}
}

func (t *Tracker) Duration() time.Duration { return t.duration }

// Flip starts card i moving toward the face for revealed, from wherever it
// is drawn right now.
func (t *Tracker) Flip(i int, revealed bool) {
	if t.duration <= 0 {
		return
	}
	t.active[i] = Toward(t.Angle(i, !revealed), revealed)
}

// Angle is the angle card i is drawn at. revealed is the card's current flag.
func (t *Tracker) Angle(i int, revealed bool) float64 {
	if r, ok := t.active[i]; ok {
		return r.Angle(t.duration)
	}
	return Rest(revealed)
}

// Advance moves every active rotation forward by dt and drops finished ones.
// It reports whether any card is still moving.
func (t *Tracker) Advance(dt time.Duration) bool {
	for i, r := range t.active {
		r = r.Advance(dt)
		if r.Done(t.duration) {
			delete(t.active, i)
			continue
		}
		t.active[i] = r
	}
	return t.Running()
}

func (t *Tracker) Running() bool { return len(t.active) > 0 }
