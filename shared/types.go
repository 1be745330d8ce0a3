package shared

import (
	"github.com/shopspring/decimal"
)

// Session is what the client persists between runs. Token and UserName are
// always written and cleared together.
type Session struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
	Email    string `json:"email,omitempty"`
	Host     string `json:"host,omitempty"`
}

func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.UserName != "" {
		return s.UserName
	}
	return s.Email
}

type User struct {
	UserId    int64     `json:"user_id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	FullName  *string   `json:"full_name"`
	CreatedAt Timestamp `json:"created_at"`
}

type SocialAccount struct {
	AccountId         int64     `json:"account_id" validate:"required"`
	UserId            int64     `json:"user_id"`
	Platform          Platform  `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	Username          string    `json:"username" validate:"required"`
	ProfilePictureUrl *string   `json:"profile_picture_url"`
	IsConnected       bool      `json:"is_connected"`
	CreatedAt         Timestamp `json:"created_at"`
}

type ScheduledContent struct {
	ScheduleId    int64          `json:"schedule_id" validate:"required"`
	UserId        int64          `json:"user_id"`
	AccountId     *int64         `json:"account_id"`
	Platform      Platform       `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	ContentType   ContentType    `json:"content_type" validate:"required,oneof=post story reel"`
	Title         *string        `json:"title"`
	Caption       *string        `json:"caption"`
	MediaUrls     *string        `json:"media_urls"`
	Hashtags      *string        `json:"hashtags"`
	ScheduledTime Timestamp      `json:"scheduled_time" validate:"required"`
	Status        ScheduleStatus `json:"status" validate:"required,oneof=pending published failed"`
	PublishedAt   *Timestamp     `json:"published_at"`
	ReminderSent  bool           `json:"reminder_sent"`
	CreatedAt     Timestamp      `json:"created_at"`
}

// Label is the title when present, otherwise "<content type> on <platform>".
func (s *ScheduledContent) Label() string {
	if s.Title != nil && *s.Title != "" {
		return *s.Title
	}
	return string(s.ContentType) + " on " + string(s.Platform)
}

// CalendarEvent is the backend's read-only projection of a ScheduledContent
// for grid rendering.
type CalendarEvent struct {
	ScheduleId    int64          `json:"schedule_id" validate:"required"`
	Title         string         `json:"title"`
	Platform      Platform       `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	ContentType   ContentType    `json:"content_type" validate:"required,oneof=post story reel"`
	ScheduledTime Timestamp      `json:"scheduled_time" validate:"required"`
	Status        ScheduleStatus `json:"status" validate:"required,oneof=pending published failed"`
	Color         string         `json:"color"`
}

type CalendarView struct {
	Events            []CalendarEvent    `json:"events" validate:"dive"`
	UpcomingReminders []ScheduledContent `json:"upcoming_reminders" validate:"dive"`
}

type Message struct {
	MessageId        int64         `json:"message_id" validate:"required"`
	UserId           int64         `json:"user_id"`
	AccountId        int64         `json:"account_id"`
	Platform         Platform      `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	SenderUsername   string        `json:"sender_username"`
	SenderProfilePic *string       `json:"sender_profile_pic"`
	MessageContent   string        `json:"message_content"`
	Status           MessageStatus `json:"status" validate:"required,oneof=unread read replied archived"`
	IsPriority       bool          `json:"is_priority"`
	ReceivedAt       Timestamp     `json:"received_at" validate:"required"`
	ReadAt           *Timestamp    `json:"read_at"`
	RepliedAt        *Timestamp    `json:"replied_at"`
}

type InboxSummary struct {
	TotalMessages      int            `json:"total_messages" validate:"gte=0"`
	UnreadCount        int            `json:"unread_count" validate:"gte=0"`
	PriorityCount      int            `json:"priority_count" validate:"gte=0"`
	MessagesByPlatform map[string]int `json:"messages_by_platform"`
}

type AnalyticsData struct {
	AnalyticsId    int64           `json:"analytics_id"`
	AccountId      int64           `json:"account_id" validate:"required"`
	Date           Timestamp       `json:"date" validate:"required"`
	FollowersCount int64           `json:"followers_count"`
	FollowingCount int64           `json:"following_count"`
	PostsCount     int64           `json:"posts_count"`
	TotalLikes     int64           `json:"total_likes"`
	TotalComments  int64           `json:"total_comments"`
	TotalShares    int64           `json:"total_shares"`
	TotalViews     int64           `json:"total_views"`
	EngagementRate decimal.Decimal `json:"engagement_rate"`
	Reach          int64           `json:"reach"`
	Impressions    int64           `json:"impressions"`
}

type AnalyticsSummary struct {
	Platform            Platform        `json:"platform" validate:"required"`
	AccountUsername     string          `json:"account_username"`
	TotalFollowers      int64           `json:"total_followers"`
	FollowerGrowth      int64           `json:"follower_growth"`
	TotalEngagement     int64           `json:"total_engagement"`
	EngagementRate      decimal.Decimal `json:"engagement_rate"`
	TotalReach          int64           `json:"total_reach"`
	TotalImpressions    int64           `json:"total_impressions"`
	TopPerformingMetric string          `json:"top_performing_metric"`
}

type DashboardAnalytics struct {
	TotalAccounts         int                      `json:"total_accounts" validate:"gte=0"`
	TotalFollowers        int64                    `json:"total_followers"`
	TotalEngagement       int64                    `json:"total_engagement"`
	AverageEngagementRate decimal.Decimal          `json:"average_engagement_rate"`
	Accounts              []AnalyticsSummary       `json:"accounts" validate:"dive"`
	RecentActivity        []map[string]interface{} `json:"recent_activity"`
}
