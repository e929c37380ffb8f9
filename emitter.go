package touchstrip

// Consumer receives zone transitions as tag-level press and release calls.
// Calls arrive synchronously on the goroutine that processes frames.
type Consumer interface {
	Engage(tag ButtonValue)
	Disengage(tag ButtonValue)
}

// ZoneEvent describes one zone transition for hooks and the EventStore.
type ZoneEvent struct {
	Type  EventType
	Zone  ZoneID
	Name  string
	Tag   ButtonValue
	Frame uint64
}

// EventStore is the interface for optional ECS integration. When set, every
// zone transition is also forwarded to the store.
type EventStore interface {
	EmitEvent(event ZoneEvent)
}

type handlerKind uint8

const (
	kindConsumer handlerKind = iota
	kindEngage
	kindDisengage
)

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	consumers []handler[Consumer]
	engage    []handler[func(ZoneEvent)]
	disengage []handler[func(ZoneEvent)]
	nextID    uint32
}

// CallbackHandle allows removing a registered consumer or hook.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters the consumer or hook so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case kindConsumer:
		h.reg.consumers = removeHandler(h.reg.consumers, h.id)
	case kindEngage:
		h.reg.engage = removeHandler(h.reg.engage, h.id)
	case kindDisengage:
		h.reg.disengage = removeHandler(h.reg.disengage, h.id)
	}
}

// removeHandler returns a new slice without id. The old backing array is
// left untouched so a dispatch ranging over it can finish.
func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[F], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// Emitter delivers zone transitions to consumers, hooks, the ring buttons
// and the event store.
type Emitter struct {
	catalog  *Catalog
	handlers handlerRegistry
	ring     *RingButtons
	store    EventStore
	frame    uint64

	engages    int
	disengages int
}

// NewEmitter returns an emitter that resolves zone tags through catalog.
func NewEmitter(catalog *Catalog) *Emitter {
	return &Emitter{catalog: catalog}
}

// AddConsumer registers a consumer for every engage and disengage.
func (e *Emitter) AddConsumer(c Consumer) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.consumers = append(e.handlers.consumers, handler[Consumer]{id: id, fn: c})
	return CallbackHandle{id: id, reg: &e.handlers, kind: kindConsumer}
}

// OnEngage registers a callback fired when a zone becomes engaged.
func (e *Emitter) OnEngage(fn func(ZoneEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.engage = append(e.handlers.engage, handler[func(ZoneEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: kindEngage}
}

// OnDisengage registers a callback fired when a zone becomes disengaged.
func (e *Emitter) OnDisengage(fn func(ZoneEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.disengage = append(e.handlers.disengage, handler[func(ZoneEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: kindDisengage}
}

// SetRing sets the optional ring-button consumer. Pass nil to remove it.
func (e *Emitter) SetRing(r *RingButtons) {
	e.ring = r
}

// SetEntityStore sets the optional ECS bridge.
func (e *Emitter) SetEntityStore(store EventStore) {
	e.store = store
}

// Dispatch delivers one step's transitions: every disengage first, then
// every engage, each in ascending zone order. Releasing before pressing
// keeps a swipe from one zone to its neighbour from showing both held.
func (e *Emitter) Dispatch(engaged, disengaged ZoneSet) {
	disengaged.Each(func(id ZoneID) { e.fire(EventDisengage, id) })
	engaged.Each(func(id ZoneID) { e.fire(EventEngage, id) })
}

func (e *Emitter) fire(typ EventType, id ZoneID) {
	z := e.catalog.Zone(id)
	ev := ZoneEvent{Type: typ, Zone: id, Name: z.Name, Tag: z.Tag, Frame: e.frame}

	if typ == EventEngage {
		e.engages++
		for _, h := range e.handlers.consumers {
			h.fn.Engage(z.Tag)
		}
		for _, h := range e.handlers.engage {
			h.fn(ev)
		}
		if e.ring != nil {
			e.ring.Engage(z.Tag)
		}
	} else {
		e.disengages++
		for _, h := range e.handlers.consumers {
			h.fn.Disengage(z.Tag)
		}
		for _, h := range e.handlers.disengage {
			h.fn(ev)
		}
		if e.ring != nil {
			e.ring.Disengage(z.Tag)
		}
	}

	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}
