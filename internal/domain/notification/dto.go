package notification

const EventNotification = "notification"

// LiveEvent is what the hub writes to websocket clients.
type LiveEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
	Total         int64          `json:"total"`
}
