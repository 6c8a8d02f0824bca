package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/venue"
	"github.com/gatherhub/gatherhub/pkg/config"
)

// onlineVenueID is the shared platform_venue_id for the per-platform
// online venue that online events attach to.
const onlineVenueID = "online"

// SeedOnlineVenues ensures the shared online venue row exists for every
// platform. Idempotent: existing rows are left untouched.
func SeedOnlineVenues(ctx context.Context, client *ent.Client) error {
	platforms := []string{
		config.PlatformMeetup,
		config.PlatformEventbrite,
		config.PlatformLuma,
		config.PlatformLocal,
	}
	for _, platform := range platforms {
		err := client.Venue.Create().
			SetID(uuid.NewString()).
			SetName("Online event").
			SetPlatform(platform).
			SetPlatformVenueID(onlineVenueID).
			SetIsOnline(true).
			OnConflictColumns(venue.FieldPlatform, venue.FieldPlatformVenueID).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed online venue for %s: %w", platform, err)
		}
	}
	return nil
}
