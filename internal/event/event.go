// internal/event/event.go
package event

// EventType identifies an event.
type EventType string

// Event is a notification produced by the simulation.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers. It lives on the frame-loop
// side: the simulation only appends to a Queue, and the frame loop drains
// that queue into the dispatcher.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeSounds registers listener for every sound event.
func (d *Dispatcher) SubscribeSounds(listener Listener) {
	for _, t := range SoundTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners must be comparable.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to its subscribers in subscription order.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// DispatchAll delivers a drained batch in order.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
