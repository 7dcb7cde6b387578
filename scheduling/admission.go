package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/store"
)

// BookingRequest is the validated input for admitting a new booking. Both
// creation paths build one: the public page leaves EndsAt zero so it is
// derived from the service duration, the staff portal may set it explicitly.
type BookingRequest struct {
	SalonID   uint
	ServiceID uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string

	StartsAt time.Time
	EndsAt   time.Time // zero value: derive from service duration

	// RequireActiveService is set on the public path; staff may still book
	// a deactivated service they can see in their own catalog.
	RequireActiveService bool
}

// ReschedulePatch carries the fields a PATCH may change. Nil pointers leave
// the stored value untouched.
type ReschedulePatch struct {
	StartsAt  *time.Time
	EndsAt    *time.Time
	ServiceID *uint
	Status    *string
	Notes     *string
}

// Scheduler guards the core invariant: for one salon, no two blocking
// bookings may overlap. Every state-changing booking path funnels through it.
type Scheduler struct {
	bookings *store.BookingStore
	services *store.ServiceStore

	// blockingStatuses restricts which bookings block a slot; nil means all.
	blockingStatuses []string

	// one mutex per salon serializes the check-then-insert window. Two
	// concurrent admissions for the same salon cannot interleave between the
	// overlap read and the insert, which closes the double-booking race.
	locks sync.Map // map[uint]*sync.Mutex
}

func NewScheduler(bookings *store.BookingStore, services *store.ServiceStore, blockingStatuses []string) *Scheduler {
	return &Scheduler{bookings: bookings, services: services, blockingStatuses: blockingStatuses}
}

func (s *Scheduler) salonLock(salonID uint) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(salonID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// blocks reports whether a booking in the given status occupies its slot
// under the configured policy.
func (s *Scheduler) blocks(status string) bool {
	if s.blockingStatuses == nil {
		return true
	}
	for _, b := range s.blockingStatuses {
		if b == status {
			return true
		}
	}
	return false
}

// Admit validates the request, resolves the service, checks the requested
// interval against every blocking booking of the salon and inserts the
// booking with status SCHEDULED. On any rejection nothing is persisted.
//
// Rejections: *ValidationError, ErrInvalidService, ErrSlotConflict.
func (s *Scheduler) Admit(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var missing []string
	if req.ServiceID == 0 {
		missing = append(missing, "serviceId")
	}
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.StartsAt.IsZero() {
		missing = append(missing, "startsAt")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var service *models.Service
	var err error
	if req.RequireActiveService {
		service, err = s.services.GetActiveService(ctx, req.SalonID, req.ServiceID)
	} else {
		service, err = s.services.GetService(ctx, req.SalonID, req.ServiceID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidService
		}
		return nil, err
	}

	endsAt := req.EndsAt
	if endsAt.IsZero() {
		endsAt = AddMinutes(req.StartsAt, service.DurationMin)
	}
	if !endsAt.After(req.StartsAt) {
		return nil, &ValidationError{Fields: []string{"endsAt"}}
	}

	booking := &models.Booking{
		SalonID:       req.SalonID,
		ServiceID:     service.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		StartsAt:      req.StartsAt,
		EndsAt:        endsAt,
		Status:        models.StatusScheduled,
	}

	lock := s.salonLock(req.SalonID)
	lock.Lock()
	defer lock.Unlock()

	err = s.bookings.Transaction(ctx, func(tx *store.BookingStore) error {
		conflicts, err := tx.ListOverlapping(ctx, req.SalonID, booking.StartsAt, booking.EndsAt, 0, s.blockingStatuses)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotConflict
		}
		return tx.Insert(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Reschedule applies a patch to an existing booking. When the time window
// changes, or a status change moves the booking into the blocking set, the
// overlap check is re-run against the salon's other bookings before anything
// is written; otherwise the update passes through. Without the status case a
// cancelled booking could be patched back to SCHEDULED on top of whoever took
// the freed slot in the meantime.
//
// Rejections: ErrNotFound, *ValidationError, ErrInvalidService,
// ErrSlotConflict.
func (s *Scheduler) Reschedule(ctx context.Context, id uint, patch ReschedulePatch) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.ServiceID != nil && *patch.ServiceID != booking.ServiceID {
		service, err := s.services.GetService(ctx, booking.SalonID, *patch.ServiceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrInvalidService
			}
			return nil, err
		}
		booking.ServiceID = service.ID
		booking.Service = nil
	}
	statusChanged := false
	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) {
			return nil, &ValidationError{Fields: []string{"status"}}
		}
		statusChanged = *patch.Status != booking.Status
		booking.Status = *patch.Status
	}
	if patch.Notes != nil {
		booking.Notes = *patch.Notes
	}

	timeChanged := patch.StartsAt != nil || patch.EndsAt != nil
	if patch.StartsAt != nil {
		booking.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		booking.EndsAt = *patch.EndsAt
	}
	if !booking.EndsAt.After(booking.StartsAt) {
		return nil, &ValidationError{Fields: []string{"endsAt"}}
	}

	// A booking that does not block its slot after the patch cannot break
	// the no-overlap invariant, so only blocking bookings need the re-check.
	recheck := (timeChanged || statusChanged) && s.blocks(booking.Status)

	lock := s.salonLock(booking.SalonID)
	lock.Lock()
	defer lock.Unlock()

	err = s.bookings.Transaction(ctx, func(tx *store.BookingStore) error {
		if recheck {
			conflicts, err := tx.ListOverlapping(ctx, booking.SalonID, booking.StartsAt, booking.EndsAt, booking.ID, s.blockingStatuses)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return ErrSlotConflict
			}
		}
		return tx.Update(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}
