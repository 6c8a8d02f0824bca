package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/venue"
	"github.com/gatherhub/gatherhub/pkg/models"
)

// upsertVenue returns the id of the venue matching (platform,
// platformVenueId), creating it on first sight. Online venues resolve to
// the single shared online-venue row per platform. Concurrent creates are
// resolved through the unique constraint.
func upsertVenue(ctx context.Context, client *ent.Client, platform string, v *models.Venue) (string, error) {
	platformVenueID := v.PlatformVenueID
	if v.IsOnline {
		platformVenueID = "online"
	}

	existing, err := client.Venue.Query().
		Where(venue.Platform(platform), venue.PlatformVenueID(platformVenueID)).
		Only(ctx)
	if err == nil {
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query venue: %w", err)
	}

	create := client.Venue.Create().
		SetID(uuid.NewString()).
		SetName(v.Name).
		SetPlatform(platform).
		SetPlatformVenueID(platformVenueID).
		SetIsOnline(v.IsOnline)
	if !v.IsOnline {
		if v.Street != "" {
			create.SetStreet(v.Street)
		}
		if v.City != "" {
			create.SetCity(v.City)
		}
		if v.Region != "" {
			create.SetRegion(v.Region)
		}
		if v.PostalCode != "" {
			create.SetPostalCode(v.PostalCode)
		}
		if v.Country != "" {
			create.SetCountry(v.Country)
		}
		if v.Lat != nil {
			create.SetLat(*v.Lat)
		}
		if v.Lon != nil {
			create.SetLon(*v.Lon)
		}
	}

	created, err := create.Save(ctx)
	if err == nil {
		return created.ID, nil
	}
	if !ent.IsConstraintError(err) {
		return "", fmt.Errorf("failed to create venue: %w", err)
	}

	// Lost the insert race; the winner's row is authoritative.
	existing, err = client.Venue.Query().
		Where(venue.Platform(platform), venue.PlatformVenueID(platformVenueID)).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to re-query venue after insert race: %w", err)
	}
	return existing.ID, nil
}

// upsertEventByPlatform reconciles one canonical event into the store,
// atomic on the (platform, platformId) unique constraint. Returns whether a
// new row was created.
func upsertEventByPlatform(ctx context.Context, client *ent.Client, ev *models.Event, platform, groupID, venueID string) (bool, string, error) {
	existing, err := client.Event.Query().
		Where(event.Platform(platform), event.PlatformID(ev.PlatformID)).
		Only(ctx)
	if err == nil {
		if err := applyEventUpdate(ctx, existing, ev, venueID); err != nil {
			return false, "", err
		}
		return false, existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return false, "", fmt.Errorf("failed to query event: %w", err)
	}

	create := client.Event.Create().
		SetID(uuid.NewString()).
		SetPlatform(platform).
		SetPlatformID(ev.PlatformID).
		SetGroupID(groupID).
		SetTitle(ev.Title).
		SetEventURL(ev.EventURL).
		SetStartTime(ev.StartTime).
		SetTimezone(ev.Timezone).
		SetStatus(event.Status(ev.Status)).
		SetEventType(event.EventType(ev.EventType)).
		SetRsvpCount(ev.RSVPCount).
		SetLastSyncAt(time.Now().UTC())
	if venueID != "" {
		create.SetVenueID(venueID)
	}
	if ev.Description != "" {
		create.SetDescription(ev.Description)
	}
	if ev.PhotoURL != "" {
		create.SetPhotoURL(ev.PhotoURL)
	}
	if ev.Duration != "" {
		create.SetDuration(ev.Duration)
	}
	create.SetNillableEndTime(ev.EndTime)
	create.SetNillableMaxAttendees(ev.MaxAttendees)

	row, err := create.Save(ctx)
	if err == nil {
		return true, row.ID, nil
	}
	if !ent.IsConstraintError(err) {
		return false, "", fmt.Errorf("failed to create event: %w", err)
	}

	// A concurrent sync inserted the same (platform, platformId) first.
	// Fall back to updating that row; this path must never duplicate.
	existing, err = client.Event.Query().
		Where(event.Platform(platform), event.PlatformID(ev.PlatformID)).
		Only(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to re-query event after insert race: %w", err)
	}
	if err := applyEventUpdate(ctx, existing, ev, venueID); err != nil {
		return false, "", err
	}
	return false, existing.ID, nil
}

func applyEventUpdate(ctx context.Context, existing *ent.Event, ev *models.Event, venueID string) error {
	update := existing.Update().
		SetTitle(ev.Title).
		SetEventURL(ev.EventURL).
		SetStartTime(ev.StartTime).
		SetTimezone(ev.Timezone).
		SetEventType(event.EventType(ev.EventType)).
		SetRsvpCount(ev.RSVPCount).
		SetLastSyncAt(time.Now().UTC())
	// Cancelled is terminal; an upstream flip back to active is ignored.
	if existing.Status != event.StatusCancelled || ev.Status == string(event.StatusCancelled) {
		update.SetStatus(event.Status(ev.Status))
	}
	if venueID != "" {
		update.SetVenueID(venueID)
	}
	if ev.Description != "" {
		update.SetDescription(ev.Description)
	}
	if ev.PhotoURL != "" {
		update.SetPhotoURL(ev.PhotoURL)
	}
	if ev.Duration != "" {
		update.SetDuration(ev.Duration)
	}
	update.SetNillableEndTime(ev.EndTime)
	update.SetNillableMaxAttendees(ev.MaxAttendees)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// listFutureActiveEvents returns the group's future active events on one
// platform, the candidate set for deletion inference.
func listFutureActiveEvents(ctx context.Context, client *ent.Client, groupID, platform string) ([]*ent.Event, error) {
	return client.Event.Query().
		Where(
			event.GroupID(groupID),
			event.PlatformEQ(platform),
			event.StatusEQ(event.StatusActive),
			event.StartTimeGT(time.Now().UTC()),
		).
		All(ctx)
}

// cancelEvent marks an event cancelled. Terminal state.
func cancelEvent(ctx context.Context, client *ent.Client, id string) error {
	return client.Event.UpdateOneID(id).
		SetStatus(event.StatusCancelled).
		Exec(ctx)
}
