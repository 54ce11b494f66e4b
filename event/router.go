package event

// Handler receives routed events
type Handler interface {
	HandleEvent(ev GameEvent)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev GameEvent)

func (f HandlerFunc) HandleEvent(ev GameEvent) { f(ev) }

// Router drains a Queue and fans events out to handlers by type
// Dispatch is single-threaded; handlers run in registration order
type Router struct {
	queue    *Queue
	handlers map[EventType][]Handler
	buf      []GameEvent
}

func NewRouter(queue *Queue) *Router {
	return &Router{
		queue:    queue,
		handlers: make(map[EventType][]Handler),
	}
}

// Register subscribes h to each listed type
func (r *Router) Register(h Handler, types ...EventType) {
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch routes every pending event and returns how many were consumed
func (r *Router) Dispatch() int {
	r.buf = r.queue.Consume(r.buf[:0])
	for _, ev := range r.buf {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	n := len(r.buf)
	clear(r.buf)
	return n
}

// HandlerCount returns the number of handlers registered for t
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
