package state

// Severity levels shown next to notifications.
const (
	SeverityInfo     = "INFO"
	SeverityError    = "ERROR"
	SeverityCritical = "CRITICAL"
)

// Notification is one message in the rotating notification queue.
type Notification struct {
	Message  string
	Severity string
}

type NotificationStore interface {
	Entries() []Notification
	SetEntries([]Notification)
	Len() int
	Rotate() bool
}

type notificationStore struct {
	entries []Notification
}

func NewNotificationStore() NotificationStore {
	return &notificationStore{}
}

func (s *notificationStore) Entries() []Notification {
	return cloneNotifications(s.entries)
}

func (s *notificationStore) SetEntries(entries []Notification) {
	s.entries = cloneNotifications(entries)
}

func (s *notificationStore) Len() int {
	return len(s.entries)
}

// Rotate moves the head of the queue to the tail. Queues shorter than two
// entries are left alone.
func (s *notificationStore) Rotate() bool {
	if len(s.entries) < 2 {
		return false
	}
	head := s.entries[0]
	copy(s.entries, s.entries[1:])
	s.entries[len(s.entries)-1] = head
	return true
}

// SeedNotifications returns the queue the application starts with.
func SeedNotifications() []Notification {
	return []Notification{
		{Message: "Event1", Severity: SeverityInfo},
		{Message: "Event2", Severity: SeverityInfo},
		{Message: "Event3", Severity: SeverityCritical},
		{Message: "Event4", Severity: SeverityError},
	}
}

func cloneNotifications(entries []Notification) []Notification {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Notification, len(entries))
	copy(dup, entries)
	return dup
}
