package event

// Queue is an append-only buffer of events. The simulation is the only
// writer and never reads it back; the frame loop drains it once per frame.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// PushType appends an event without data.
func (q *Queue) PushType(t EventType) {
	q.Push(Event{Type: t})
}

// Drain returns every pending event in FIFO order and empties the queue.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

func (q *Queue) Len() int {
	return len(q.events)
}
