package shared

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTiktok    Platform = "tiktok"
)

var AllPlatforms = []Platform{PlatformInstagram, PlatformFacebook, PlatformTiktok}

func (p Platform) Valid() bool {
	for _, v := range AllPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

func (p Platform) Icon() string {
	switch p {
	case PlatformInstagram:
		return "📸"
	case PlatformFacebook:
		return "👤"
	case PlatformTiktok:
		return "🎵"
	}
	return "🌐"
}

// Color is the hex color the web app uses for the platform.
func (p Platform) Color() string {
	switch p {
	case PlatformInstagram:
		return "#E1306C"
	case PlatformFacebook:
		return "#4267B2"
	case PlatformTiktok:
		return "#000000"
	}
	return "#646cff"
}

type ContentType string

const (
	ContentTypePost  ContentType = "post"
	ContentTypeStory ContentType = "story"
	ContentTypeReel  ContentType = "reel"
)

var AllContentTypes = []ContentType{ContentTypePost, ContentTypeStory, ContentTypeReel}

func (c ContentType) Valid() bool {
	for _, v := range AllContentTypes {
		if c == v {
			return true
		}
	}
	return false
}

func (c ContentType) Icon() string {
	switch c {
	case ContentTypePost:
		return "📝"
	case ContentTypeStory:
		return "📖"
	case ContentTypeReel:
		return "🎬"
	}
	return "•"
}

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusPublished ScheduleStatus = "published"
	ScheduleStatusFailed    ScheduleStatus = "failed"
)

var AllScheduleStatuses = []ScheduleStatus{ScheduleStatusPending, ScheduleStatusPublished, ScheduleStatusFailed}

func (s ScheduleStatus) Valid() bool {
	for _, v := range AllScheduleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type MessageStatus string

const (
	MessageStatusUnread   MessageStatus = "unread"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

var AllMessageStatuses = []MessageStatus{MessageStatusUnread, MessageStatusRead, MessageStatusReplied, MessageStatusArchived}

func (s MessageStatus) Valid() bool {
	for _, v := range AllMessageStatuses {
		if s == v {
			return true
		}
	}
	return false
}
