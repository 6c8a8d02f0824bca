package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/rsvp"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// RSVPService runs the reservation state machine for (event, user) pairs.
//
// Transitions happen inside a transaction that locks the event row, so
// the capacity check, the waitlist position, and promotion on cancel are
// serialized per event. Methods return the domain events the caller must
// publish after the transaction commits.
type RSVPService struct {
	client *ent.Client
}

// NewRSVPService creates a new RSVPService
func NewRSVPService(client *ent.Client) *RSVPService {
	return &RSVPService{client: client}
}

// Create reserves a spot for the user. The RSVP is confirmed while the
// confirmed count is below capacity (or capacity is unset), otherwise
// waitlisted at the tail. A cancelled prior RSVP is replaced.
//
// Fails with ErrNotFound for an unknown event, ErrGone for a cancelled
// event, and ErrConflict when an active RSVP already exists.
func (s *RSVPService) Create(ctx context.Context, eventID, userID string) (*ent.RSVP, []bus.Envelope, error) {
	if userID == "" {
		return nil, nil, NewValidationError("user_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return nil, nil, err
	}
	if ev.Status == event.StatusCancelled {
		return nil, nil, ErrGone
	}

	existing, err := tx.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.UserID(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("failed to query rsvp: %w", err)
	}
	if existing != nil {
		if existing.Status != rsvp.StatusCancelled {
			return nil, nil, ErrConflict
		}
		// Re-RSVP after cancel starts from a clean row.
		if err := tx.RSVP.DeleteOne(existing).Exec(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to delete cancelled rsvp: %w", err)
		}
	}

	confirmed, err := tx.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.StatusEQ(rsvp.StatusConfirmed)).
		Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count confirmed rsvps: %w", err)
	}

	create := tx.RSVP.Create().
		SetID(uuid.NewString()).
		SetEventID(eventID).
		SetUserID(userID)

	status := rsvp.StatusConfirmed
	if ev.MaxAttendees != nil && confirmed >= *ev.MaxAttendees {
		status = rsvp.StatusWaitlisted
		waitlisted, err := tx.RSVP.Query().
			Where(rsvp.EventID(eventID), rsvp.StatusEQ(rsvp.StatusWaitlisted)).
			Count(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to count waitlisted rsvps: %w", err)
		}
		create.SetWaitlistPosition(waitlisted + 1)
	}
	create.SetStatus(status)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, ErrConflict
		}
		return nil, nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	if err := syncRSVPCount(ctx, tx, eventID); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit rsvp: %w", err)
	}

	payload := map[string]interface{}{
		"event_id": eventID,
		"status":   string(status),
	}
	if row.WaitlistPosition != nil {
		payload["waitlist_position"] = *row.WaitlistPosition
	}
	events := []bus.Envelope{
		bus.New(bus.TypeEventRSVP, payload, bus.Metadata{UserID: userID, Source: "rsvp"}),
	}
	return row, events, nil
}

// Cancel releases the user's reservation. Cancelling a confirmed RSVP
// promotes the head of the waitlist, if any; the promotion is a
// conditional update keyed on the waitlisted status so two concurrent
// cancels cannot double-promote.
func (s *RSVPService) Cancel(ctx context.Context, eventID, userID string) (*ent.RSVP, []bus.Envelope, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := lockEvent(ctx, tx, eventID); err != nil {
		return nil, nil, err
	}

	existing, err := tx.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to query rsvp: %w", err)
	}
	if existing.Status == rsvp.StatusCancelled {
		return nil, nil, ErrNotFound
	}
	wasConfirmed := existing.Status == rsvp.StatusConfirmed

	row, err := tx.RSVP.UpdateOne(existing).
		SetStatus(rsvp.StatusCancelled).
		SetCancelledAt(time.Now()).
		ClearWaitlistPosition().
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to cancel rsvp: %w", err)
	}

	events := []bus.Envelope{
		bus.New(bus.TypeEventRSVPCancelled, map[string]interface{}{
			"event_id": eventID,
		}, bus.Metadata{UserID: userID, Source: "rsvp"}),
	}

	if wasConfirmed {
		promoted, err := promoteHeadOfWaitlist(ctx, tx, eventID)
		if err != nil {
			return nil, nil, err
		}
		if promoted != nil {
			events = append(events, bus.New(bus.TypeEventRSVP, map[string]interface{}{
				"event_id":               eventID,
				"status":                 string(rsvp.StatusConfirmed),
				"promoted_from_waitlist": true,
			}, bus.Metadata{UserID: promoted.UserID, Source: "rsvp"}))
		}
	}

	if err := syncRSVPCount(ctx, tx, eventID); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit rsvp cancel: %w", err)
	}
	return row, events, nil
}

// ListByEvent returns all non-cancelled RSVPs for an event, confirmed
// first, waitlist in position order.
func (s *RSVPService) ListByEvent(ctx context.Context, eventID string) ([]*ent.RSVP, error) {
	return s.client.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.StatusNEQ(rsvp.StatusCancelled)).
		Order(ent.Asc(rsvp.FieldStatus), ent.Asc(rsvp.FieldWaitlistPosition)).
		All(ctx)
}

// ListByUser returns a user's non-cancelled RSVPs, newest first.
func (s *RSVPService) ListByUser(ctx context.Context, userID string) ([]*ent.RSVP, error) {
	return s.client.RSVP.Query().
		Where(rsvp.UserID(userID), rsvp.StatusNEQ(rsvp.StatusCancelled)).
		Order(ent.Desc(rsvp.FieldRsvpAt)).
		All(ctx)
}

// lockEvent reads the event row under FOR UPDATE so all RSVP transitions
// for one event serialize.
func lockEvent(ctx context.Context, tx *ent.Tx, eventID string) (*ent.Event, error) {
	ev, err := tx.Event.Query().
		Where(event.ID(eventID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	return ev, nil
}

// promoteHeadOfWaitlist confirms the first waitlisted RSVP, if any.
// Returns the promoted row or nil.
func promoteHeadOfWaitlist(ctx context.Context, tx *ent.Tx, eventID string) (*ent.RSVP, error) {
	head, err := tx.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.StatusEQ(rsvp.StatusWaitlisted)).
		Order(ent.Asc(rsvp.FieldWaitlistPosition)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query waitlist head: %w", err)
	}

	n, err := tx.RSVP.Update().
		Where(rsvp.ID(head.ID), rsvp.StatusEQ(rsvp.StatusWaitlisted)).
		SetStatus(rsvp.StatusConfirmed).
		ClearWaitlistPosition().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to promote waitlisted rsvp: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return tx.RSVP.Get(ctx, head.ID)
}

// syncRSVPCount resets the event's rsvp_count to the confirmed row count.
// A recount self-corrects instead of compounding drift.
func syncRSVPCount(ctx context.Context, tx *ent.Tx, eventID string) error {
	confirmed, err := tx.RSVP.Query().
		Where(rsvp.EventID(eventID), rsvp.StatusEQ(rsvp.StatusConfirmed)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to recount rsvps: %w", err)
	}
	if err := tx.Event.UpdateOneID(eventID).SetRsvpCount(confirmed).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update rsvp count: %w", err)
	}
	return nil
}
