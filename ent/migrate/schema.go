// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "achievement_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "icon", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "target_value", Type: field.TypeInt},
		{Name: "badge_slug", Type: field.TypeString, Nullable: true},
		{Name: "entitlement", Type: field.TypeString, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "progress_mode", Type: field.TypeEnum, Enums: []string{"counter", "gauge"}, Default: "counter"},
		{Name: "gauge_field", Type: field.TypeString, Nullable: true},
		{Name: "hidden", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_event_type_enabled",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[10], AchievementsColumns[15]},
			},
		},
	}
	// AchievementProgressColumns holds the columns for the "achievement_progress" table.
	AchievementProgressColumns = []*schema.Column{
		{Name: "progress_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "achievement_key", Type: field.TypeString},
		{Name: "current_value", Type: field.TypeInt, Default: 0},
		{Name: "target_value", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AchievementProgressTable holds the schema information for the "achievement_progress" table.
	AchievementProgressTable = &schema.Table{
		Name:       "achievement_progress",
		Columns:    AchievementProgressColumns,
		PrimaryKey: []*schema.Column{AchievementProgressColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementprogress_user_id_achievement_key",
				Unique:  true,
				Columns: []*schema.Column{AchievementProgressColumns[1], AchievementProgressColumns[2]},
			},
			{
				Name:    "achievementprogress_achievement_key",
				Unique:  false,
				Columns: []*schema.Column{AchievementProgressColumns[2]},
			},
		},
	}
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "badge_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "icon", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "hidden", Type: field.TypeBool, Default: false},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badge_group_id",
				Unique:  false,
				Columns: []*schema.Column{BadgesColumns[9]},
			},
		},
	}
	// BadgeClaimLinksColumns holds the columns for the "badge_claim_links" table.
	BadgeClaimLinksColumns = []*schema.Column{
		{Name: "claim_link_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "current_uses", Type: field.TypeInt, Default: 0},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "achievement_key", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "event_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeString},
	}
	// BadgeClaimLinksTable holds the schema information for the "badge_claim_links" table.
	BadgeClaimLinksTable = &schema.Table{
		Name:       "badge_claim_links",
		Columns:    BadgeClaimLinksColumns,
		PrimaryKey: []*schema.Column{BadgeClaimLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "badge_claim_links_badges_claim_links",
				Columns:    []*schema.Column{BadgeClaimLinksColumns[9]},
				RefColumns: []*schema.Column{BadgesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CheckinsColumns holds the columns for the "checkins" table.
	CheckinsColumns = []*schema.Column{
		{Name: "checkin_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "code_id", Type: field.TypeString, Nullable: true},
		{Name: "checked_in_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
	}
	// CheckinsTable holds the schema information for the "checkins" table.
	CheckinsTable = &schema.Table{
		Name:       "checkins",
		Columns:    CheckinsColumns,
		PrimaryKey: []*schema.Column{CheckinsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkins_events_checkins",
				Columns:    []*schema.Column{CheckinsColumns[4]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkin_event_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{CheckinsColumns[4], CheckinsColumns[1]},
			},
		},
	}
	// CheckinCodesColumns holds the columns for the "checkin_codes" table.
	CheckinCodesColumns = []*schema.Column{
		{Name: "checkin_code_id", Type: field.TypeString, Unique: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "current_uses", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckinCodesTable holds the schema information for the "checkin_codes" table.
	CheckinCodesTable = &schema.Table{
		Name:       "checkin_codes",
		Columns:    CheckinCodesColumns,
		PrimaryKey: []*schema.Column{CheckinCodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkincode_event_id_code",
				Unique:  true,
				Columns: []*schema.Column{CheckinCodesColumns[1], CheckinCodesColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "venue_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "event_url", Type: field.TypeString},
		{Name: "photo_url", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "duration", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "cancelled", "draft"}, Default: "active"},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"physical", "online", "hybrid"}, Default: "physical"},
		{Name: "rsvp_count", Type: field.TypeInt, Default: 0},
		{Name: "max_attendees", Type: field.TypeInt, Nullable: true},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_groups_events",
				Columns:    []*schema.Column{EventsColumns[20]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_platform_platform_id",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2]},
			},
			{
				Name:    "event_group_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[20], EventsColumns[12], EventsColumns[8]},
			},
			{
				Name:    "event_start_time",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[8]},
			},
		},
	}
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "favorite_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "favorites_groups_favorites",
				Columns:    []*schema.Column{FavoritesColumns[3]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_user_id_group_id",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[1], FavoritesColumns[3]},
			},
			{
				Name:    "favorite_group_id",
				Unique:  false,
				Columns: []*schema.Column{FavoritesColumns[3]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "member_count", Type: field.TypeInt, Default: 0},
		{Name: "photo_url", Type: field.TypeString, Nullable: true},
		{Name: "display", Type: field.TypeBool, Default: true},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "social_links", Type: field.TypeJSON, Nullable: true},
		{Name: "sync_active", Type: field.TypeBool, Default: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_sync_error", Type: field.TypeString, Nullable: true},
		{Name: "max_badges", Type: field.TypeInt, Default: 10},
		{Name: "max_badge_points", Type: field.TypeInt, Default: 50},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_display_featured",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[6], GroupsColumns[7]},
			},
			{
				Name:    "group_sync_active",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[10]},
			},
		},
	}
	// OnboardingStepsColumns holds the columns for the "onboarding_steps" table.
	OnboardingStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "event_key", Type: field.TypeString},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// OnboardingStepsTable holds the schema information for the "onboarding_steps" table.
	OnboardingStepsTable = &schema.Table{
		Name:       "onboarding_steps",
		Columns:    OnboardingStepsColumns,
		PrimaryKey: []*schema.Column{OnboardingStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onboardingstep_event_key",
				Unique:  false,
				Columns: []*schema.Column{OnboardingStepsColumns[4]},
			},
		},
	}
	// PlatformConnectionsColumns holds the columns for the "platform_connections" table.
	PlatformConnectionsColumns = []*schema.Column{
		{Name: "connection_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
	}
	// PlatformConnectionsTable holds the schema information for the "platform_connections" table.
	PlatformConnectionsTable = &schema.Table{
		Name:       "platform_connections",
		Columns:    PlatformConnectionsColumns,
		PrimaryKey: []*schema.Column{PlatformConnectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "platform_connections_groups_connections",
				Columns:    []*schema.Column{PlatformConnectionsColumns[9]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "platformconnection_group_id_platform_platform_id",
				Unique:  true,
				Columns: []*schema.Column{PlatformConnectionsColumns[9], PlatformConnectionsColumns[1], PlatformConnectionsColumns[2]},
			},
			{
				Name:    "platformconnection_platform_active",
				Unique:  false,
				Columns: []*schema.Column{PlatformConnectionsColumns[1], PlatformConnectionsColumns[5]},
			},
		},
	}
	// QueuedEventsColumns holds the columns for the "queued_events" table.
	QueuedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "event_timestamp", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "delivered", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueuedEventsTable holds the schema information for the "queued_events" table.
	QueuedEventsTable = &schema.Table{
		Name:       "queued_events",
		Columns:    QueuedEventsColumns,
		PrimaryKey: []*schema.Column{QueuedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuedevent_status_id",
				Unique:  false,
				Columns: []*schema.Column{QueuedEventsColumns[5], QueuedEventsColumns[0]},
			},
			{
				Name:    "queuedevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{QueuedEventsColumns[1]},
			},
		},
	}
	// RsvpsColumns holds the columns for the "rsvps" table.
	RsvpsColumns = []*schema.Column{
		{Name: "rsvp_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "waitlisted", "cancelled"}, Default: "confirmed"},
		{Name: "rsvp_at", Type: field.TypeTime},
		{Name: "waitlist_position", Type: field.TypeInt, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "event_id", Type: field.TypeString},
	}
	// RsvpsTable holds the schema information for the "rsvps" table.
	RsvpsTable = &schema.Table{
		Name:       "rsvps",
		Columns:    RsvpsColumns,
		PrimaryKey: []*schema.Column{RsvpsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rsvps_events_rsvps",
				Columns:    []*schema.Column{RsvpsColumns[6]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rsvp_event_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{RsvpsColumns[6], RsvpsColumns[1]},
			},
			{
				Name:    "rsvp_event_id_status_waitlist_position",
				Unique:  false,
				Columns: []*schema.Column{RsvpsColumns[6], RsvpsColumns[2], RsvpsColumns[4]},
			},
			{
				Name:    "rsvp_user_id",
				Unique:  false,
				Columns: []*schema.Column{RsvpsColumns[1]},
			},
		},
	}
	// SyncLogsColumns holds the columns for the "sync_logs" table.
	SyncLogsColumns = []*schema.Column{
		{Name: "sync_log_id", Type: field.TypeString, Unique: true},
		{Name: "connection_id", Type: field.TypeString, Nullable: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "events_created", Type: field.TypeInt, Default: 0},
		{Name: "events_updated", Type: field.TypeInt, Default: 0},
		{Name: "events_deleted", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString},
	}
	// SyncLogsTable holds the schema information for the "sync_logs" table.
	SyncLogsTable = &schema.Table{
		Name:       "sync_logs",
		Columns:    SyncLogsColumns,
		PrimaryKey: []*schema.Column{SyncLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sync_logs_groups_sync_logs",
				Columns:    []*schema.Column{SyncLogsColumns[10]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "synclog_group_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{SyncLogsColumns[10], SyncLogsColumns[4]},
			},
			{
				Name:    "synclog_status",
				Unique:  false,
				Columns: []*schema.Column{SyncLogsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "admin", "superadmin"}, Default: "user"},
		{Name: "public", Type: field.TypeBool, Default: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserBadgesColumns holds the columns for the "user_badges" table.
	UserBadgesColumns = []*schema.Column{
		{Name: "user_badge_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "awarded_at", Type: field.TypeTime},
		{Name: "awarded_by", Type: field.TypeString, Nullable: true},
		{Name: "badge_id", Type: field.TypeString},
	}
	// UserBadgesTable holds the schema information for the "user_badges" table.
	UserBadgesTable = &schema.Table{
		Name:       "user_badges",
		Columns:    UserBadgesColumns,
		PrimaryKey: []*schema.Column{UserBadgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_badges_badges_user_badges",
				Columns:    []*schema.Column{UserBadgesColumns[4]},
				RefColumns: []*schema.Column{BadgesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userbadge_user_id_badge_id",
				Unique:  true,
				Columns: []*schema.Column{UserBadgesColumns[1], UserBadgesColumns[4]},
			},
			{
				Name:    "userbadge_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserBadgesColumns[1]},
			},
		},
	}
	// UserEntitlementsColumns holds the columns for the "user_entitlements" table.
	UserEntitlementsColumns = []*schema.Column{
		{Name: "entitlement_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "entitlement", Type: field.TypeString},
		{Name: "granted_at", Type: field.TypeTime},
	}
	// UserEntitlementsTable holds the schema information for the "user_entitlements" table.
	UserEntitlementsTable = &schema.Table{
		Name:       "user_entitlements",
		Columns:    UserEntitlementsColumns,
		PrimaryKey: []*schema.Column{UserEntitlementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userentitlement_user_id_entitlement",
				Unique:  true,
				Columns: []*schema.Column{UserEntitlementsColumns[1], UserEntitlementsColumns[2]},
			},
		},
	}
	// UserOnboardingStepsColumns holds the columns for the "user_onboarding_steps" table.
	UserOnboardingStepsColumns = []*schema.Column{
		{Name: "user_step_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "step_key", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// UserOnboardingStepsTable holds the schema information for the "user_onboarding_steps" table.
	UserOnboardingStepsTable = &schema.Table{
		Name:       "user_onboarding_steps",
		Columns:    UserOnboardingStepsColumns,
		PrimaryKey: []*schema.Column{UserOnboardingStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "useronboardingstep_user_id_step_key",
				Unique:  true,
				Columns: []*schema.Column{UserOnboardingStepsColumns[1], UserOnboardingStepsColumns[2]},
			},
		},
	}
	// VenuesColumns holds the columns for the "venues" table.
	VenuesColumns = []*schema.Column{
		{Name: "venue_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "street", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lon", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_online", Type: field.TypeBool, Default: false},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_venue_id", Type: field.TypeString},
	}
	// VenuesTable holds the schema information for the "venues" table.
	VenuesTable = &schema.Table{
		Name:       "venues",
		Columns:    VenuesColumns,
		PrimaryKey: []*schema.Column{VenuesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "venue_platform_platform_venue_id",
				Unique:  true,
				Columns: []*schema.Column{VenuesColumns[10], VenuesColumns[11]},
			},
		},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "webhook_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "secret", Type: field.TypeString},
		{Name: "event_types", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime},
		{Name: "webhook_id", Type: field.TypeString},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhooks_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[8]},
				RefColumns: []*schema.Column{WebhooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_webhook_id_delivered_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[8], WebhookDeliveriesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		AchievementProgressTable,
		BadgesTable,
		BadgeClaimLinksTable,
		CheckinsTable,
		CheckinCodesTable,
		EventsTable,
		FavoritesTable,
		GroupsTable,
		OnboardingStepsTable,
		PlatformConnectionsTable,
		QueuedEventsTable,
		RsvpsTable,
		SyncLogsTable,
		UsersTable,
		UserBadgesTable,
		UserEntitlementsTable,
		UserOnboardingStepsTable,
		VenuesTable,
		WebhooksTable,
		WebhookDeliveriesTable,
	}
)

func init() {
	AchievementProgressTable.Annotation = &entsql.Annotation{
		Table: "achievement_progress",
	}
	BadgeClaimLinksTable.ForeignKeys[0].RefTable = BadgesTable
	CheckinsTable.ForeignKeys[0].RefTable = EventsTable
	EventsTable.ForeignKeys[0].RefTable = GroupsTable
	FavoritesTable.ForeignKeys[0].RefTable = GroupsTable
	PlatformConnectionsTable.ForeignKeys[0].RefTable = GroupsTable
	RsvpsTable.ForeignKeys[0].RefTable = EventsTable
	RsvpsTable.Annotation = &entsql.Annotation{
		Table: "rsvps",
	}
	SyncLogsTable.ForeignKeys[0].RefTable = GroupsTable
	UserBadgesTable.ForeignKeys[0].RefTable = BadgesTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhooksTable
}
