package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	entcheckin "github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/checkincode"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// CheckinService redeems check-in codes at events. A check-in is unique
// per (event, user); code use budgets are enforced under a FOR UPDATE
// lock on the code row, the same discipline as badge claim links.
type CheckinService struct {
	client *ent.Client
}

// NewCheckinService creates a new CheckinService
func NewCheckinService(client *ent.Client) *CheckinService {
	return &CheckinService{client: client}
}

// CheckIn redeems a code for a user at an event.
//
// Fails with ErrNotFound for an unknown event or code, ErrGone when the
// event is cancelled or the code is exhausted, and ErrConflict when the
// user is already checked in.
func (s *CheckinService) CheckIn(ctx context.Context, eventID, code, userID string) (*ent.Checkin, []bus.Envelope, error) {
	if userID == "" {
		return nil, nil, NewValidationError("user_id", "required")
	}
	if code == "" {
		return nil, nil, NewValidationError("code", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.Event.Query().
		Where(event.ID(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to query event: %w", err)
	}
	if ev.Status == event.StatusCancelled {
		return nil, nil, ErrGone
	}

	cc, err := tx.CheckinCode.Query().
		Where(checkincode.EventID(eventID), checkincode.Code(code)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to query checkin code: %w", err)
	}

	if cc.MaxUses != nil && cc.CurrentUses >= *cc.MaxUses {
		return nil, nil, ErrGone
	}

	exists, err := tx.Checkin.Query().
		Where(entcheckin.EventID(eventID), entcheckin.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query checkin: %w", err)
	}
	if exists {
		return nil, nil, ErrConflict
	}

	row, err := tx.Checkin.Create().
		SetID(uuid.NewString()).
		SetEventID(eventID).
		SetUserID(userID).
		SetCodeID(cc.ID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, ErrConflict
		}
		return nil, nil, fmt.Errorf("failed to record checkin: %w", err)
	}

	// Redundant under the row lock, same belt-and-braces as claim links.
	n, err := tx.CheckinCode.Update().
		Where(checkincode.ID(cc.ID), codeUnderUseBudget).
		AddCurrentUses(1).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to increment code uses: %w", err)
	}
	if n == 0 {
		return nil, nil, ErrGone
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit checkin: %w", err)
	}

	events := []bus.Envelope{
		bus.New(bus.TypeEventCheckin, map[string]interface{}{
			"event_id": eventID,
			"code_id":  cc.ID,
		}, bus.Metadata{UserID: userID, Source: "checkins"}),
	}
	return row, events, nil
}

// ListByEvent returns the check-ins for an event, oldest first.
func (s *CheckinService) ListByEvent(ctx context.Context, eventID string) ([]*ent.Checkin, error) {
	rows, err := s.client.Checkin.Query().
		Where(entcheckin.EventID(eventID)).
		Order(ent.Asc(entcheckin.FieldCheckedInAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	return rows, nil
}

// codeUnderUseBudget admits codes with unlimited or remaining uses.
func codeUnderUseBudget(s *sql.Selector) {
	s.Where(sql.Or(
		sql.IsNull(s.C(checkincode.FieldMaxUses)),
		sql.ColumnsLT(s.C(checkincode.FieldCurrentUses), s.C(checkincode.FieldMaxUses)),
	))
}
