package cloud

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateAborted
	StateSuperseded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	case StateSuperseded:
		return "superseded"
	}
	return "unknown"
}

// Status is returned by Run.Step.
type Status int

const (
	// StatusContinue means an item was processed and more may follow.
	StatusContinue Status = iota
	// StatusCompleted means the list is exhausted.
	StatusCompleted
	// StatusAborted means a budget ran out or a drawn event was canceled.
	StatusAborted
	// StatusSuperseded means another run started on the same group.
	StatusSuperseded
	// StatusIdle means the run was never started or its start was vetoed.
	StatusIdle
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	case StatusSuperseded:
		return "superseded"
	case StatusIdle:
		return "idle"
	}
	return "unknown"
}

// Stats counts item outcomes of a run.
type Stats struct {
	Processed int `json:"processed"`
	Drawn     int `json:"drawn"`
	Skipped   int `json:"skipped"`
	Rejected  int `json:"rejected"`
}

// Run places a word list on a group's surfaces, one item per Step.
type Run struct {
	ID string

	group *Group
	items []Item
	cfg   Config
	sess  *Session

	// Guarded by group.mu.
	next        int
	started     time.Time
	offStart    func()
	interactive bool
	hovered     *Placement

	// mu guards the fields read by accessors, which may be called from
	// listeners while group.mu is held.
	mu         sync.Mutex
	state      State
	stats      Stats
	placements []*Placement
}

// NewRun prepares a run of items on group. The items are copied. Invalid
// configuration is reported here, before anything is scheduled.
func NewRun(group *Group, items []Item, cfg Config) (*Run, error) {
	sess, err := NewSession(cfg, group.surfaces...)
	if err != nil {
		return nil, err
	}
	return &Run{
		ID:    uuid.NewString(),
		group: group,
		items: slices.Clone(items),
		cfg:   sess.cfg,
		sess:  sess,
	}, nil
}

// Session returns the run's placement session.
func (r *Run) Session() *Session { return r.sess }

// Start emits a cancelable EventStart on the group. If no listener cancels
// it, any active run on the group is superseded, the session is reset and
// the run becomes Running. Start reports whether the run started.
func (r *Run) Start() bool {
	r.group.mu.Lock()
	defer r.group.mu.Unlock()

	if r.State() != StateIdle {
		return false
	}
	if !r.group.emit(&Event{Type: EventStart, Run: r, cancelable: true}) {
		r.cfg.Logger.Debug("run start canceled", "run", r.ID)
		return false
	}

	r.sess.Reset()
	if r.cfg.interactive() {
		r.interactive = true
		var off func()
		off = r.group.On(EventStart, func(*Event) {
			off()
			r.interactive = false
			r.hovered = nil
		})
	}
	r.offStart = r.group.On(EventStart, func(*Event) { r.supersede() })

	r.started = r.cfg.Clock()
	r.setState(StateRunning)
	r.cfg.Logger.Debug("run started", "run", r.ID, "words", len(r.items),
		"grid", [2]int{r.sess.ngx, r.sess.ngy}, "radius", r.sess.maxRadius)
	return true
}

// Step processes the next item. Once the run has left Running, Step keeps
// returning its terminal status.
func (r *Run) Step() Status {
	r.group.mu.Lock()
	defer r.group.mu.Unlock()

	switch r.State() {
	case StateIdle:
		return StatusIdle
	case StateCompleted:
		return StatusCompleted
	case StateAborted:
		return StatusAborted
	case StateSuperseded:
		return StatusSuperseded
	}

	if r.next >= len(r.items) {
		r.finish(StateCompleted)
		r.group.emit(&Event{Type: EventStop, Run: r})
		return StatusCompleted
	}

	item := r.items[r.next]
	p, ws := r.sess.PutWord(item)
	r.record(p, ws)
	r.cfg.Logger.Debug("word processed", "word", item.Word, "status", ws)

	ok := r.group.emit(&Event{
		Type:       EventDrawn,
		Run:        r,
		Item:       &item,
		Drawn:      p != nil,
		Status:     ws,
		Placement:  p,
		cancelable: true,
	})
	if r.sess.exceeded() || !ok || r.overBudget() {
		r.finish(StateAborted)
		if r.cfg.Abort != nil {
			r.cfg.Abort()
		}
		r.group.emit(&Event{Type: EventAbort, Run: r})
		r.group.emit(&Event{Type: EventStop, Run: r})
		r.cfg.Logger.Debug("run aborted", "run", r.ID, "word", item.Word, "canceled", !ok)
		return StatusAborted
	}

	r.next++
	return StatusContinue
}

func (r *Run) overBudget() bool {
	return r.cfg.TotalBudget > 0 && r.cfg.Clock().Sub(r.started) > r.cfg.TotalBudget
}

func (r *Run) record(p *Placement, ws WordStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Processed++
	switch ws {
	case WordDrawn:
		r.stats.Drawn++
		r.placements = append(r.placements, p)
	case WordSkipped:
		r.stats.Skipped++
	case WordRejected:
		r.stats.Rejected++
	}
}

func (r *Run) finish(s State) {
	if r.offStart != nil {
		r.offStart()
		r.offStart = nil
	}
	r.setState(s)
}

// supersede is called, with the group locked, when another run starts.
func (r *Run) supersede() {
	if r.State() != StateRunning {
		return
	}
	r.finish(StateSuperseded)
	r.cfg.Logger.Debug("run superseded", "run", r.ID, "processed", r.next)
}

func (r *Run) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// State returns the run's lifecycle state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Stats returns the item outcome counts so far.
func (r *Run) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Placements returns the words drawn so far, in draw order.
func (r *Run) Placements() []*Placement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.placements)
}

// Hover resolves the pointer at pixel (x, y) and calls Config.Hover when
// the word under the pointer changed, with nil when it left a word.
func (r *Run) Hover(x, y float64) {
	r.group.mu.Lock()
	if !r.interactive || r.cfg.Hover == nil {
		r.group.mu.Unlock()
		return
	}
	p := r.sess.HitTest(x, y)
	changed := p != r.hovered
	r.hovered = p
	r.group.mu.Unlock()

	if changed {
		r.cfg.Hover(p)
	}
}

// Click calls Config.Click with the word at pixel (x, y). Clicks on empty
// cells are ignored.
func (r *Run) Click(x, y float64) {
	r.group.mu.Lock()
	if !r.interactive || r.cfg.Click == nil {
		r.group.mu.Unlock()
		return
	}
	p := r.sess.HitTest(x, y)
	r.group.mu.Unlock()

	if p != nil {
		r.cfg.Click(p)
	}
}
