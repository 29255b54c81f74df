package model

// Draft is the uncommitted text of the add-card form.
type Draft struct {
	Question string
	Answer   string
}

// Submit appends the draft to d. On success the draft is cleared; on
// ErrBlankDraft it is left as typed.
func (dr *Draft) Submit(d *Deck) error {
	if err := d.Append(dr.Question, dr.Answer); err != nil {
		return err
	}
	*dr = Draft{}
	return nil
}
