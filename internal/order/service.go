package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JacobSsozi/JadeDelight/internal/confirm"
	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/restaurant"
	"github.com/JacobSsozi/JadeDelight/internal/validate"
)

// Service drives order form sessions: creation from the menu source,
// input events, submission, and confirmation lookup.
type Service struct {
	menu     menu.Repository
	profile  *restaurant.Profile
	store    *Store
	renderer confirm.Renderer
	now      func() time.Time
}

func NewService(menuRepo menu.Repository, profile *restaurant.Profile, renderer confirm.Renderer) *Service {
	return &Service{
		menu:     menuRepo,
		profile:  profile,
		store:    NewStore(),
		renderer: renderer,
		now:      time.Now,
	}
}

// --------------------------------------------------
// SESSION LIFECYCLE
// --------------------------------------------------

// CreateSession builds a fresh order form from the menu source.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	items, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading menu: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu source returned no items")
	}

	form, err := NewFormContext(uuid.New().String(), items, s.profile)
	if err != nil {
		return nil, err
	}

	sess := &Session{Form: form}
	s.store.Put(form.ID, sess)
	return sess, nil
}

// Lookup finds a live session by ID.
func (s *Service) Lookup(id string) (*Session, bool) {
	return s.store.Get(id)
}

// --------------------------------------------------
// INPUT EVENTS
// --------------------------------------------------

// SetQuantity delivers a quantity edit to one line item. The raw
// value is passed through untouched; the aggregate has recomputed by
// the time this returns.
func (s *Service) SetQuantity(sess *Session, index int, raw string) error {
	var err error
	sess.Do(func() {
		if index < 0 || index >= len(sess.Form.Lines) {
			err = fmt.Errorf("no line item at index %d", index)
			return
		}
		sess.Form.Lines[index].SetQuantity(raw)
	})
	return err
}

// SelectFulfillment switches pickup/delivery.
func (s *Service) SelectFulfillment(sess *Session, kind Kind) {
	sess.Do(func() {
		sess.Form.Fulfillment.Select(kind)
	})
}

// CustomerUpdate carries partial edits to the customer fields. Nil
// means the field was not touched.
type CustomerUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
}

// UpdateCustomer writes the supplied fields. These are the live
// values validation and confirmation read; nothing is cached.
func (s *Service) UpdateCustomer(sess *Session, upd CustomerUpdate) {
	sess.Do(func() {
		form := sess.Form
		if upd.FirstName != nil {
			form.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			form.LastName = *upd.LastName
		}
		if upd.Phone != nil {
			form.Phone = *upd.Phone
		}
		if upd.Street != nil {
			form.Street.Value = *upd.Street
		}
		if upd.City != nil {
			form.City.Value = *upd.City
		}
	})
}

// --------------------------------------------------
// SUBMISSION
// --------------------------------------------------

// SubmitResult is either a blocking validation outcome or an accepted
// order with its acknowledgment markup.
type SubmitResult struct {
	Outcome   validate.Outcome
	PopupHTML string
}

// Submit runs every rule against live state. On success the
// confirmation document is built and rendered immediately — the
// snapshot is taken before control returns, so edits made afterwards
// cannot leak into it. A later successful submit replaces the
// snapshot.
func (s *Service) Submit(sess *Session) SubmitResult {
	var result SubmitResult
	sess.Do(func() {
		result.Outcome = validate.RunAll(sess.Form.Rules())
		if !result.Outcome.Valid() {
			return
		}
		sess.Confirmation = s.renderer.RenderDocument(sess.Form.Snapshot(), s.now())
		result.PopupHTML = s.renderer.RenderPopup()
	})
	return result
}

// Confirmation returns the stored snapshot document, if the session
// has ever been submitted successfully.
func (s *Service) Confirmation(sess *Session) (string, bool) {
	var html string
	sess.Do(func() {
		html = sess.Confirmation
	})
	return html, html != ""
}
