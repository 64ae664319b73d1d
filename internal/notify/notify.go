// Package notify provides desktop notifications via D-Bus.
package notify

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a notifier that drops every notification.
func Disabled() Notifier {
	return disabled{}
}

type disabled struct{}

func (disabled) Notify(Notification) (uint32, error) { return 0, nil }

func (disabled) Close(uint32) error { return nil }

const (
	trackTimeout = 5000
	alertTimeout = 8000
)

// TrackNotification builds the "now playing" notification. Passing the ID
// of the previous track notification replaces it instead of stacking.
func TrackNotification(title, genre, icon string, replaces uint32) Notification {
	return Notification{
		Title:      title,
		Body:       genre,
		Icon:       icon,
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// AlertNotification builds a notification for a user-facing alert.
func AlertNotification(msg string, isError bool) Notification {
	n := Notification{
		Title:   "Tunes",
		Body:    msg,
		Timeout: alertTimeout,
		Urgency: UrgencyNormal,
	}
	if isError {
		n.Urgency = UrgencyCritical
		n.Icon = "dialog-error"
	}
	return n
}
