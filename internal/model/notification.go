package model

type NotificationStatus string

const (
	StatusSuccess NotificationStatus = "success"
	StatusError   NotificationStatus = "error"
)

// Notification is a transient message shown to the user (a toast).
type Notification struct {
	Status      NotificationStatus
	Title       string
	Description string
}

func (n Notification) IsError() bool {
	return n.Status == StatusError
}
