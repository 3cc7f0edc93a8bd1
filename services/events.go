package services

// Event names pushed to a session's room
const (
	EventNewMessage  = "newMessage"
	EventTyping      = "typing"
	EventUnreadReset = "unreadReset"
)

// EventSink pushes session events to connected views. Rooms are session ids.
type EventSink interface {
	Emit(room, event string, payload interface{})
}

type nopSink struct{}

func (nopSink) Emit(string, string, interface{}) {}
