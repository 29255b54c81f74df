package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBlankDraft is returned when a question or answer is empty after trimming.
	ErrBlankDraft = errors.New("question and answer must not be blank")
	// ErrIndexOutOfRange is returned for a toggle outside the current deck.
	ErrIndexOutOfRange = errors.New("card index out of range")
)

// Entry is a card together with its display state.
type Entry struct {
	Card
	Revealed bool
}

// Deck is an append-only, ordered list of entries.
// The zero value is an empty deck.
type Deck struct {
	entries []Entry
}

// NewDeck returns a deck seeded with DefaultCards, all showing their question.
func NewDeck() *Deck {
	return NewDeckFrom(DefaultCards())
}

func NewDeckFrom(cards []Card) *Deck {
	d := &Deck{entries: make([]Entry, 0, len(cards))}
	for _, c := range cards {
		d.entries = append(d.entries, Entry{Card: c})
	}
	return d
}

func (d *Deck) Len() int { return len(d.entries) }

// Entries returns a copy; callers cannot reach into the deck.
func (d *Deck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Entry returns the entry at i.
func (d *Deck) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(d.entries) {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Append adds a new unrevealed card. Blank input (after trimming) is rejected
// with ErrBlankDraft and leaves the deck unchanged. The card keeps the text
// as typed.
func (d *Deck) Append(question, answer string) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return ErrBlankDraft
	}
	d.entries = append(d.entries, Entry{Card: Card{Question: question, Answer: answer}})
	return nil
}

// Toggle flips the revealed flag of the card at i and returns the new value.
func (d *Deck) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(d.entries) {
		return false, fmt.Errorf("toggle %d of %d: %w", i, len(d.entries), ErrIndexOutOfRange)
	}
	d.entries[i].Revealed = !d.entries[i].Revealed
	return d.entries[i].Revealed, nil
}

// Face is the text currently shown for card i: the answer when revealed,
// otherwise the question. Out-of-range indexes yield "".
func (d *Deck) Face(i int) string {
	e, ok := d.Entry(i)
	if !ok {
		return ""
	}
	return e.Face()
}

func (e Entry) Face() string {
	if e.Revealed {
		return e.Answer
	}
	return e.Question
}

// Revealed counts the cards currently showing their answer.
func (d *Deck) Revealed() (n int) {
	for _, e := range d.entries {
		if e.Revealed {
			n++
		}
	}
	return
}
