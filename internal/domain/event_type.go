package domain

// EventType names a lifecycle event a hook subscribes to.
// It is descriptive only and never takes part in filtering.
type EventType string

const (
	EventPreToolUse       EventType = "PreToolUse"
	EventPostToolUse      EventType = "PostToolUse"
	EventUserPromptSubmit EventType = "UserPromptSubmit"
	EventNotification     EventType = "Notification"
	EventStop             EventType = "Stop"
	EventSubagentStop     EventType = "SubagentStop"
	EventPreCompact       EventType = "PreCompact"
	EventSessionStart     EventType = "SessionStart"
	EventSessionEnd       EventType = "SessionEnd"
)

var eventTypes = []EventType{
	EventPreToolUse,
	EventPostToolUse,
	EventUserPromptSubmit,
	EventNotification,
	EventStop,
	EventSubagentStop,
	EventPreCompact,
	EventSessionStart,
	EventSessionEnd,
}

// EventTypes returns every known event type in lifecycle order.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// ParseEventType returns the EventType for name, if known.
func ParseEventType(name string) (EventType, bool) {
	e := EventType(name)
	return e, e.IsValid()
}

func (e EventType) IsValid() bool {
	for _, known := range eventTypes {
		if e == known {
			return true
		}
	}
	return false
}

func (e EventType) String() string { return string(e) }
