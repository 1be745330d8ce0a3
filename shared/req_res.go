package shared

import (
	"net/url"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
	UserName    string `json:"user_name"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

type ConnectAccountRequest struct {
	Platform Platform `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	Username string   `json:"username" validate:"required"`
}

type CreateScheduledContentRequest struct {
	AccountId     *int64      `json:"account_id,omitempty"`
	Platform      Platform    `json:"platform" validate:"required,oneof=instagram facebook tiktok"`
	ContentType   ContentType `json:"content_type" validate:"required,oneof=post story reel"`
	Title         *string     `json:"title,omitempty"`
	Caption       *string     `json:"caption,omitempty"`
	MediaUrls     *string     `json:"media_urls,omitempty"`
	Hashtags      *string     `json:"hashtags,omitempty"`
	ScheduledTime Timestamp   `json:"scheduled_time" validate:"required"`
}

// UpdateScheduledContentRequest is a partial update; nil fields are left
// untouched by the backend.
type UpdateScheduledContentRequest struct {
	AccountId     *int64          `json:"account_id,omitempty"`
	Platform      *Platform       `json:"platform,omitempty" validate:"omitempty,oneof=instagram facebook tiktok"`
	ContentType   *ContentType    `json:"content_type,omitempty" validate:"omitempty,oneof=post story reel"`
	Title         *string         `json:"title,omitempty"`
	Caption       *string         `json:"caption,omitempty"`
	MediaUrls     *string         `json:"media_urls,omitempty"`
	Hashtags      *string         `json:"hashtags,omitempty"`
	ScheduledTime *Timestamp      `json:"scheduled_time,omitempty"`
	Status        *ScheduleStatus `json:"status,omitempty" validate:"omitempty,oneof=pending published failed"`
}

func (r *UpdateScheduledContentRequest) IsEmpty() bool {
	return r.AccountId == nil && r.Platform == nil && r.ContentType == nil && r.Title == nil &&
		r.Caption == nil && r.MediaUrls == nil && r.Hashtags == nil && r.ScheduledTime == nil && r.Status == nil
}

type UpdateMessageRequest struct {
	Status     *MessageStatus `json:"status,omitempty" validate:"omitempty,oneof=unread read replied archived"`
	IsPriority *bool          `json:"is_priority,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type InboxFilter struct {
	Status       MessageStatus
	Platform     Platform
	PriorityOnly bool
}

func (f InboxFilter) Query() url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Add("status", string(f.Status))
	}
	if f.Platform != "" {
		params.Add("platform", string(f.Platform))
	}
	if f.PriorityOnly {
		params.Add("priority_only", "true")
	}
	return params
}

type ScheduleFilter struct {
	Status      ScheduleStatus
	Platform    Platform
	ContentType ContentType
}

func (f ScheduleFilter) Query() url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Add("status", string(f.Status))
	}
	if f.Platform != "" {
		params.Add("platform", string(f.Platform))
	}
	if f.ContentType != "" {
		params.Add("content_type", string(f.ContentType))
	}
	return params
}

type CalendarRange struct {
	Start *time.Time
	End   *time.Time
}

func (r CalendarRange) Query() url.Values {
	params := url.Values{}
	if r.Start != nil {
		params.Add("start_date", r.Start.UTC().Format(IsoFormat))
	}
	if r.End != nil {
		params.Add("end_date", r.End.UTC().Format(IsoFormat))
	}
	return params
}
