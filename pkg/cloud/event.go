package cloud

import (
	"sync"

	"github.com/matzehuels/wordcloud/pkg/errors"
)

// EventType names a lifecycle notification.
type EventType string

// Lifecycle events emitted on a Group.
const (
	// EventStart is emitted, cancelable, when a run is about to start.
	EventStart EventType = "wordcloudstart"
	// EventDrawn is emitted, cancelable, after each processed item.
	EventDrawn EventType = "wordclouddrawn"
	// EventAbort is emitted when a run aborts.
	EventAbort EventType = "wordcloudabort"
	// EventStop is emitted when a run completes or aborts.
	EventStop EventType = "wordcloudstop"
)

// Event is passed to listeners. Item, Drawn, Status and Placement are only
// set on EventDrawn.
type Event struct {
	Type      EventType
	Run       *Run
	Item      *Item
	Drawn     bool
	Status    WordStatus
	Placement *Placement

	cancelable bool
	canceled   bool
}

// Cancel vetoes a cancelable event. It has no effect on other events.
func (e *Event) Cancel() {
	if e.cancelable {
		e.canceled = true
	}
}

// Canceled reports whether a listener vetoed the event.
func (e *Event) Canceled() bool { return e.canceled }

// Listener receives events. Listeners run while the group is locked and
// must not call Start, Step, Hover or Click on runs of the same group.
type Listener func(e *Event)

type listener struct{ fn Listener }

// Group is a set of surfaces drawn together. At most one run is active per
// group; the group lock serializes Start, Step, Hover and Click across all
// of its runs.
type Group struct {
	mu       sync.Mutex
	surfaces []Surface

	lmu       sync.Mutex
	listeners map[EventType][]*listener
}

// NewGroup returns a group drawing on surfaces. The first surface defines
// the grid dimensions, receives the mask and is sampled in preserve mode.
func NewGroup(surfaces ...Surface) (*Group, error) {
	if len(surfaces) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSurface, "no surfaces to draw on")
	}
	for i, s := range surfaces {
		if s == nil {
			return nil, errors.New(errors.ErrCodeInvalidSurface, "surface %d is nil", i)
		}
	}
	return &Group{surfaces: surfaces, listeners: make(map[EventType][]*listener)}, nil
}

// Surfaces returns the group's surfaces.
func (g *Group) Surfaces() []Surface { return g.surfaces }

// On registers fn for events of type t and returns a function removing it.
func (g *Group) On(t EventType, fn Listener) (off func()) {
	l := &listener{fn: fn}
	g.lmu.Lock()
	g.listeners[t] = append(g.listeners[t], l)
	g.lmu.Unlock()

	return func() {
		g.lmu.Lock()
		defer g.lmu.Unlock()
		ls := g.listeners[t]
		for i, x := range ls {
			if x == l {
				g.listeners[t] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// emit delivers e to every listener registered for its type and reports
// whether it went through uncanceled.
func (g *Group) emit(e *Event) bool {
	g.lmu.Lock()
	ls := append([]*listener(nil), g.listeners[e.Type]...)
	g.lmu.Unlock()

	for _, l := range ls {
		l.fn(e)
	}
	return !e.canceled
}
