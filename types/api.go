package types

import (
	"socialcal/shared"
)

type ApiClient interface {
	Login(req shared.LoginRequest) (*shared.LoginResponse, *shared.ApiError)
	Register(req shared.RegisterRequest) (*shared.User, *shared.ApiError)
	GetMe() (*shared.User, *shared.ApiError)

	ListAccounts() ([]*shared.SocialAccount, *shared.ApiError)
	ConnectAccount(req shared.ConnectAccountRequest) (*shared.SocialAccount, *shared.ApiError)
	DisconnectAccount(accountId int64) *shared.ApiError

	GetDashboardAnalytics() (*shared.DashboardAnalytics, *shared.ApiError)
	GetAccountAnalytics(accountId int64, days int) ([]*shared.AnalyticsData, *shared.ApiError)

	ListInbox(filter shared.InboxFilter) ([]*shared.Message, *shared.ApiError)
	GetInboxSummary() (*shared.InboxSummary, *shared.ApiError)
	GetMessage(messageId int64) (*shared.Message, *shared.ApiError)
	UpdateMessage(messageId int64, req shared.UpdateMessageRequest) (*shared.Message, *shared.ApiError)
	MarkAllRead() *shared.ApiError

	GetCalendar(r shared.CalendarRange) (*shared.CalendarView, *shared.ApiError)
	ListScheduledContent(filter shared.ScheduleFilter) ([]*shared.ScheduledContent, *shared.ApiError)
	CreateScheduledContent(req shared.CreateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError)
	UpdateScheduledContent(scheduleId int64, req shared.UpdateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError)
	DeleteScheduledContent(scheduleId int64) *shared.ApiError

	GenerateDemoData() (*shared.MessageResponse, *shared.ApiError)
}

// SessionStore holds the persisted session. Load returns nil, nil when no
// one is signed in.
type SessionStore interface {
	Load() (*shared.Session, error)
	Save(session *shared.Session) error
	Clear() error
}
