package ecs

// EventType names a gameplay notification raised during a frame.
type EventType string

const (
	EventPlayerHurt     EventType = "player_hurt"
	EventPlayerDied     EventType = "player_died"
	EventZombieKilled   EventType = "zombie_killed"
	EventTargetDestroy  EventType = "target_destroyed"
	EventItemPicked     EventType = "item_picked"
	EventSwitchUnlocked EventType = "switch_unlocked"
	EventDoorOpened     EventType = "door_opened"
	EventLevelUp        EventType = "level_up"
	EventLeverPulled    EventType = "lever_pulled"
	EventTimeUp         EventType = "time_up"
	EventGameOver       EventType = "game_over"
)

// Event is a frame-scoped notification. Systems later in the frame may read
// it; the queue is cleared when the frame ends.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the events raised so far this frame without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
