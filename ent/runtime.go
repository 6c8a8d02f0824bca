// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/checkincode"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/ent/rsvp"
	"github.com/gatherhub/gatherhub/ent/schema"
	"github.com/gatherhub/gatherhub/ent/synclog"
	"github.com/gatherhub/gatherhub/ent/user"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
	"github.com/gatherhub/gatherhub/ent/venue"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescPoints is the schema descriptor for points field.
	achievementDescPoints := achievementFields[9].Descriptor()
	// achievement.DefaultPoints holds the default value on creation for the points field.
	achievement.DefaultPoints = achievementDescPoints.Default.(int)
	// achievementDescHidden is the schema descriptor for hidden field.
	achievementDescHidden := achievementFields[14].Descriptor()
	// achievement.DefaultHidden holds the default value on creation for the hidden field.
	achievement.DefaultHidden = achievementDescHidden.Default.(bool)
	// achievementDescEnabled is the schema descriptor for enabled field.
	achievementDescEnabled := achievementFields[15].Descriptor()
	// achievement.DefaultEnabled holds the default value on creation for the enabled field.
	achievement.DefaultEnabled = achievementDescEnabled.Default.(bool)
	// achievementDescCreatedAt is the schema descriptor for created_at field.
	achievementDescCreatedAt := achievementFields[16].Descriptor()
	// achievement.DefaultCreatedAt holds the default value on creation for the created_at field.
	achievement.DefaultCreatedAt = achievementDescCreatedAt.Default.(func() time.Time)
	achievementprogressFields := schema.AchievementProgress{}.Fields()
	_ = achievementprogressFields
	// achievementprogressDescCurrentValue is the schema descriptor for current_value field.
	achievementprogressDescCurrentValue := achievementprogressFields[3].Descriptor()
	// achievementprogress.DefaultCurrentValue holds the default value on creation for the current_value field.
	achievementprogress.DefaultCurrentValue = achievementprogressDescCurrentValue.Default.(int)
	// achievementprogressDescUpdatedAt is the schema descriptor for updated_at field.
	achievementprogressDescUpdatedAt := achievementprogressFields[6].Descriptor()
	// achievementprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	achievementprogress.DefaultUpdatedAt = achievementprogressDescUpdatedAt.Default.(func() time.Time)
	// achievementprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	achievementprogress.UpdateDefaultUpdatedAt = achievementprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescPoints is the schema descriptor for points field.
	badgeDescPoints := badgeFields[6].Descriptor()
	// badge.DefaultPoints holds the default value on creation for the points field.
	badge.DefaultPoints = badgeDescPoints.Default.(int)
	// badgeDescSortOrder is the schema descriptor for sort_order field.
	badgeDescSortOrder := badgeFields[7].Descriptor()
	// badge.DefaultSortOrder holds the default value on creation for the sort_order field.
	badge.DefaultSortOrder = badgeDescSortOrder.Default.(int)
	// badgeDescHidden is the schema descriptor for hidden field.
	badgeDescHidden := badgeFields[8].Descriptor()
	// badge.DefaultHidden holds the default value on creation for the hidden field.
	badge.DefaultHidden = badgeDescHidden.Default.(bool)
	// badgeDescCreatedAt is the schema descriptor for created_at field.
	badgeDescCreatedAt := badgeFields[10].Descriptor()
	// badge.DefaultCreatedAt holds the default value on creation for the created_at field.
	badge.DefaultCreatedAt = badgeDescCreatedAt.Default.(func() time.Time)
	badgeclaimlinkFields := schema.BadgeClaimLink{}.Fields()
	_ = badgeclaimlinkFields
	// badgeclaimlinkDescCurrentUses is the schema descriptor for current_uses field.
	badgeclaimlinkDescCurrentUses := badgeclaimlinkFields[4].Descriptor()
	// badgeclaimlink.DefaultCurrentUses holds the default value on creation for the current_uses field.
	badgeclaimlink.DefaultCurrentUses = badgeclaimlinkDescCurrentUses.Default.(int)
	// badgeclaimlinkDescCreatedAt is the schema descriptor for created_at field.
	badgeclaimlinkDescCreatedAt := badgeclaimlinkFields[9].Descriptor()
	// badgeclaimlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	badgeclaimlink.DefaultCreatedAt = badgeclaimlinkDescCreatedAt.Default.(func() time.Time)
	checkinFields := schema.Checkin{}.Fields()
	_ = checkinFields
	// checkinDescCheckedInAt is the schema descriptor for checked_in_at field.
	checkinDescCheckedInAt := checkinFields[4].Descriptor()
	// checkin.DefaultCheckedInAt holds the default value on creation for the checked_in_at field.
	checkin.DefaultCheckedInAt = checkinDescCheckedInAt.Default.(func() time.Time)
	checkincodeFields := schema.CheckinCode{}.Fields()
	_ = checkincodeFields
	// checkincodeDescCurrentUses is the schema descriptor for current_uses field.
	checkincodeDescCurrentUses := checkincodeFields[4].Descriptor()
	// checkincode.DefaultCurrentUses holds the default value on creation for the current_uses field.
	checkincode.DefaultCurrentUses = checkincodeDescCurrentUses.Default.(int)
	// checkincodeDescCreatedAt is the schema descriptor for created_at field.
	checkincodeDescCreatedAt := checkincodeFields[5].Descriptor()
	// checkincode.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkincode.DefaultCreatedAt = checkincodeDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTimezone is the schema descriptor for timezone field.
	eventDescTimezone := eventFields[11].Descriptor()
	// event.DefaultTimezone holds the default value on creation for the timezone field.
	event.DefaultTimezone = eventDescTimezone.Default.(string)
	// eventDescRsvpCount is the schema descriptor for rsvp_count field.
	eventDescRsvpCount := eventFields[15].Descriptor()
	// event.DefaultRsvpCount holds the default value on creation for the rsvp_count field.
	event.DefaultRsvpCount = eventDescRsvpCount.Default.(int)
	// eventDescFeatured is the schema descriptor for featured field.
	eventDescFeatured := eventFields[17].Descriptor()
	// event.DefaultFeatured holds the default value on creation for the featured field.
	event.DefaultFeatured = eventDescFeatured.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[19].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[20].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteFields[3].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescMemberCount is the schema descriptor for member_count field.
	groupDescMemberCount := groupFields[4].Descriptor()
	// group.DefaultMemberCount holds the default value on creation for the member_count field.
	group.DefaultMemberCount = groupDescMemberCount.Default.(int)
	// groupDescDisplay is the schema descriptor for display field.
	groupDescDisplay := groupFields[6].Descriptor()
	// group.DefaultDisplay holds the default value on creation for the display field.
	group.DefaultDisplay = groupDescDisplay.Default.(bool)
	// groupDescFeatured is the schema descriptor for featured field.
	groupDescFeatured := groupFields[7].Descriptor()
	// group.DefaultFeatured holds the default value on creation for the featured field.
	group.DefaultFeatured = groupDescFeatured.Default.(bool)
	// groupDescSyncActive is the schema descriptor for sync_active field.
	groupDescSyncActive := groupFields[10].Descriptor()
	// group.DefaultSyncActive holds the default value on creation for the sync_active field.
	group.DefaultSyncActive = groupDescSyncActive.Default.(bool)
	// groupDescMaxBadges is the schema descriptor for max_badges field.
	groupDescMaxBadges := groupFields[13].Descriptor()
	// group.DefaultMaxBadges holds the default value on creation for the max_badges field.
	group.DefaultMaxBadges = groupDescMaxBadges.Default.(int)
	// groupDescMaxBadgePoints is the schema descriptor for max_badge_points field.
	groupDescMaxBadgePoints := groupFields[14].Descriptor()
	// group.DefaultMaxBadgePoints holds the default value on creation for the max_badge_points field.
	group.DefaultMaxBadgePoints = groupDescMaxBadgePoints.Default.(int)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[15].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupFields[16].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	onboardingstepFields := schema.OnboardingStep{}.Fields()
	_ = onboardingstepFields
	// onboardingstepDescSortOrder is the schema descriptor for sort_order field.
	onboardingstepDescSortOrder := onboardingstepFields[5].Descriptor()
	// onboardingstep.DefaultSortOrder holds the default value on creation for the sort_order field.
	onboardingstep.DefaultSortOrder = onboardingstepDescSortOrder.Default.(int)
	// onboardingstepDescEnabled is the schema descriptor for enabled field.
	onboardingstepDescEnabled := onboardingstepFields[6].Descriptor()
	// onboardingstep.DefaultEnabled holds the default value on creation for the enabled field.
	onboardingstep.DefaultEnabled = onboardingstepDescEnabled.Default.(bool)
	platformconnectionFields := schema.PlatformConnection{}.Fields()
	_ = platformconnectionFields
	// platformconnectionDescActive is the schema descriptor for active field.
	platformconnectionDescActive := platformconnectionFields[6].Descriptor()
	// platformconnection.DefaultActive holds the default value on creation for the active field.
	platformconnection.DefaultActive = platformconnectionDescActive.Default.(bool)
	// platformconnectionDescCreatedAt is the schema descriptor for created_at field.
	platformconnectionDescCreatedAt := platformconnectionFields[9].Descriptor()
	// platformconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	platformconnection.DefaultCreatedAt = platformconnectionDescCreatedAt.Default.(func() time.Time)
	queuedeventFields := schema.QueuedEvent{}.Fields()
	_ = queuedeventFields
	// queuedeventDescEventTimestamp is the schema descriptor for event_timestamp field.
	queuedeventDescEventTimestamp := queuedeventFields[3].Descriptor()
	// queuedevent.DefaultEventTimestamp holds the default value on creation for the event_timestamp field.
	queuedevent.DefaultEventTimestamp = queuedeventDescEventTimestamp.Default.(func() time.Time)
	// queuedeventDescAttempts is the schema descriptor for attempts field.
	queuedeventDescAttempts := queuedeventFields[5].Descriptor()
	// queuedevent.DefaultAttempts holds the default value on creation for the attempts field.
	queuedevent.DefaultAttempts = queuedeventDescAttempts.Default.(int)
	// queuedeventDescCreatedAt is the schema descriptor for created_at field.
	queuedeventDescCreatedAt := queuedeventFields[7].Descriptor()
	// queuedevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuedevent.DefaultCreatedAt = queuedeventDescCreatedAt.Default.(func() time.Time)
	rsvpFields := schema.RSVP{}.Fields()
	_ = rsvpFields
	// rsvpDescRsvpAt is the schema descriptor for rsvp_at field.
	rsvpDescRsvpAt := rsvpFields[4].Descriptor()
	// rsvp.DefaultRsvpAt holds the default value on creation for the rsvp_at field.
	rsvp.DefaultRsvpAt = rsvpDescRsvpAt.Default.(func() time.Time)
	synclogFields := schema.SyncLog{}.Fields()
	_ = synclogFields
	// synclogDescStartedAt is the schema descriptor for started_at field.
	synclogDescStartedAt := synclogFields[5].Descriptor()
	// synclog.DefaultStartedAt holds the default value on creation for the started_at field.
	synclog.DefaultStartedAt = synclogDescStartedAt.Default.(func() time.Time)
	// synclogDescEventsCreated is the schema descriptor for events_created field.
	synclogDescEventsCreated := synclogFields[7].Descriptor()
	// synclog.DefaultEventsCreated holds the default value on creation for the events_created field.
	synclog.DefaultEventsCreated = synclogDescEventsCreated.Default.(int)
	// synclogDescEventsUpdated is the schema descriptor for events_updated field.
	synclogDescEventsUpdated := synclogFields[8].Descriptor()
	// synclog.DefaultEventsUpdated holds the default value on creation for the events_updated field.
	synclog.DefaultEventsUpdated = synclogDescEventsUpdated.Default.(int)
	// synclogDescEventsDeleted is the schema descriptor for events_deleted field.
	synclogDescEventsDeleted := synclogFields[9].Descriptor()
	// synclog.DefaultEventsDeleted holds the default value on creation for the events_deleted field.
	synclog.DefaultEventsDeleted = synclogDescEventsDeleted.Default.(int)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPublic is the schema descriptor for public field.
	userDescPublic := userFields[5].Descriptor()
	// user.DefaultPublic holds the default value on creation for the public field.
	user.DefaultPublic = userDescPublic.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	userbadgeFields := schema.UserBadge{}.Fields()
	_ = userbadgeFields
	// userbadgeDescAwardedAt is the schema descriptor for awarded_at field.
	userbadgeDescAwardedAt := userbadgeFields[3].Descriptor()
	// userbadge.DefaultAwardedAt holds the default value on creation for the awarded_at field.
	userbadge.DefaultAwardedAt = userbadgeDescAwardedAt.Default.(func() time.Time)
	userentitlementFields := schema.UserEntitlement{}.Fields()
	_ = userentitlementFields
	// userentitlementDescGrantedAt is the schema descriptor for granted_at field.
	userentitlementDescGrantedAt := userentitlementFields[3].Descriptor()
	// userentitlement.DefaultGrantedAt holds the default value on creation for the granted_at field.
	userentitlement.DefaultGrantedAt = userentitlementDescGrantedAt.Default.(func() time.Time)
	useronboardingstepFields := schema.UserOnboardingStep{}.Fields()
	_ = useronboardingstepFields
	// useronboardingstepDescCompletedAt is the schema descriptor for completed_at field.
	useronboardingstepDescCompletedAt := useronboardingstepFields[3].Descriptor()
	// useronboardingstep.DefaultCompletedAt holds the default value on creation for the completed_at field.
	useronboardingstep.DefaultCompletedAt = useronboardingstepDescCompletedAt.Default.(func() time.Time)
	venueFields := schema.Venue{}.Fields()
	_ = venueFields
	// venueDescIsOnline is the schema descriptor for is_online field.
	venueDescIsOnline := venueFields[9].Descriptor()
	// venue.DefaultIsOnline holds the default value on creation for the is_online field.
	venue.DefaultIsOnline = venueDescIsOnline.Default.(bool)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[4].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[5].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttempt is the schema descriptor for attempt field.
	webhookdeliveryDescAttempt := webhookdeliveryFields[6].Descriptor()
	// webhookdelivery.DefaultAttempt holds the default value on creation for the attempt field.
	webhookdelivery.DefaultAttempt = webhookdeliveryDescAttempt.Default.(int)
	// webhookdeliveryDescDeliveredAt is the schema descriptor for delivered_at field.
	webhookdeliveryDescDeliveredAt := webhookdeliveryFields[8].Descriptor()
	// webhookdelivery.DefaultDeliveredAt holds the default value on creation for the delivered_at field.
	webhookdelivery.DefaultDeliveredAt = webhookdeliveryDescDeliveredAt.Default.(func() time.Time)
}
