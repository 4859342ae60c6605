package cloud

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func words(ws ...string) []Item {
	items := make([]Item, len(ws))
	for i, w := range ws {
		items[i] = Item{Word: w, Weight: float64(40 - 4*i)}
	}
	return items
}

func newTestRun(t *testing.T, g *Group, items []Item, cfg Config) *Run {
	t.Helper()
	r, err := NewRun(g, items, cfg)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	return r
}

func newTestGroup(t *testing.T, w, h int) (*Group, *memSurface) {
	t.Helper()
	surf := newMemSurface(w, h)
	g, err := NewGroup(surf)
	if err != nil {
		t.Fatal(err)
	}
	return g, surf
}

// drain steps r until it leaves Running and returns the final status.
func drain(t *testing.T, r *Run) Status {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if st := r.Step(); st != StatusContinue {
			return st
		}
	}
	t.Fatal("run did not finish")
	return StatusContinue
}

func TestNewGroupRejectsMissingSurfaces(t *testing.T) {
	if _, err := NewGroup(); err == nil {
		t.Error("NewGroup() with no surfaces should fail")
	}
	if _, err := NewGroup(newMemSurface(10, 10), nil); err == nil {
		t.Error("NewGroup() with a nil surface should fail")
	}
}

func TestRunCompletes(t *testing.T) {
	g, surf := newTestGroup(t, 400, 300)
	var events []EventType
	for _, et := range []EventType{EventStart, EventDrawn, EventAbort, EventStop} {
		g.On(et, func(e *Event) { events = append(events, e.Type) })
	}

	r := newTestRun(t, g, words("alpha", "beta", "gamma"), testConfig())
	if r.State() != StateIdle || r.Step() != StatusIdle {
		t.Fatal("new run should be idle")
	}
	if !r.Start() {
		t.Fatal("Start() = false")
	}
	if r.Start() {
		t.Error("second Start() should be refused")
	}
	for i := 0; i < 3; i++ {
		if st := r.Step(); st != StatusContinue {
			t.Fatalf("Step %d = %v, want continue", i, st)
		}
	}
	if st := r.Step(); st != StatusCompleted {
		t.Fatalf("Step after last word = %v, want completed", st)
	}
	if st := r.Step(); st != StatusCompleted {
		t.Errorf("Step after completion = %v, want completed", st)
	}

	want := []EventType{EventStart, EventDrawn, EventDrawn, EventDrawn, EventStop}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}

	if st := r.Stats(); st.Processed != 3 || st.Drawn != 3 {
		t.Errorf("Stats() = %+v", st)
	}
	if len(r.Placements()) != 3 || len(surf.glyphs) != 3 {
		t.Errorf("placements = %d glyphs = %d, want 3", len(r.Placements()), len(surf.glyphs))
	}
	if r.State() != StateCompleted {
		t.Errorf("State() = %v", r.State())
	}
}

func TestRunFirstWordAtCenter(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("center"), testConfig())
	r.Start()
	r.Step()
	p := r.Placements()[0]
	if p.Distance != 0 {
		t.Errorf("first word placed at radius %d, want 0", p.Distance)
	}
	cx, cy := float64(p.Rect.X)+float64(p.Rect.W)/2, float64(p.Rect.Y)+float64(p.Rect.H)/2
	if math.Abs(cx-200) > 24 || math.Abs(cy-150) > 24 {
		t.Errorf("first word centered at %v,%v, want near 200,150", cx, cy)
	}
}

func TestRunDeterministic(t *testing.T) {
	place := func() []Rect {
		g, _ := newTestGroup(t, 300, 200)
		cfg := testConfig()
		cfg.Ordered = false
		cfg.Seed = 7
		cfg.RotateRatio = 0.5
		cfg.MinRotation, cfg.MaxRotation, cfg.RotationSteps = -math.Pi/2, math.Pi/2, 2
		r := newTestRun(t, g, words("one", "two", "three", "four", "five"), cfg)
		r.Start()
		drain(t, r)
		var rects []Rect
		for _, p := range r.Placements() {
			rects = append(rects, p.Rect)
		}
		return rects
	}
	a, b := place(), place()
	if len(a) != len(b) {
		t.Fatalf("placed %d vs %d words", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("word %d placed at %+v and %+v", i, a[i], b[i])
		}
	}
}

func TestRunSkipsAndRejects(t *testing.T) {
	g, _ := newTestGroup(t, 80, 80)
	items := []Item{
		{Word: "zero", Weight: 0},
		{Word: "enormous", Weight: 400},
		{Word: "ok", Weight: 10},
	}
	r := newTestRun(t, g, items, testConfig())

	var drawn []bool
	g.On(EventDrawn, func(e *Event) { drawn = append(drawn, e.Drawn) })
	r.Start()
	if st := drain(t, r); st != StatusCompleted {
		t.Fatalf("status = %v", st)
	}
	if len(drawn) != 3 || drawn[0] || drawn[1] || !drawn[2] {
		t.Errorf("drawn = %v, want [false false true]", drawn)
	}
	if st := r.Stats(); st.Skipped != 1 || st.Rejected != 1 || st.Drawn != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestRunBudgetDisabledNeverAborts(t *testing.T) {
	clock := &stepClock{step: time.Hour}
	cfg := testConfig()
	cfg.Clock = clock.Now
	aborts := 0
	cfg.Abort = func() { aborts++ }

	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("slow", "but", "fine"), cfg)
	r.Start()
	if st := drain(t, r); st != StatusCompleted {
		t.Errorf("status = %v, want completed", st)
	}
	if aborts != 0 {
		t.Errorf("abort hook fired %d times", aborts)
	}
}

func TestRunBudgetAborts(t *testing.T) {
	clock := &stepClock{step: 10 * time.Millisecond}
	cfg := testConfig()
	cfg.Clock = clock.Now
	cfg.AbortThreshold = 5 * time.Millisecond
	aborts := 0
	cfg.Abort = func() { aborts++ }

	g, _ := newTestGroup(t, 400, 300)
	var events []EventType
	g.On(EventAbort, func(e *Event) { events = append(events, e.Type) })
	g.On(EventStop, func(e *Event) { events = append(events, e.Type) })

	r := newTestRun(t, g, words("slow", "words", "here"), cfg)
	r.Start()
	if st := r.Step(); st != StatusAborted {
		t.Fatalf("Step() = %v, want aborted", st)
	}
	if st := r.Step(); st != StatusAborted {
		t.Errorf("Step() after abort = %v", st)
	}
	if aborts != 1 {
		t.Errorf("abort hook fired %d times, want 1", aborts)
	}
	if len(events) != 2 || events[0] != EventAbort || events[1] != EventStop {
		t.Errorf("events = %v, want [abort stop]", events)
	}
	if r.Stats().Processed != 1 {
		t.Errorf("processed %d words, want 1", r.Stats().Processed)
	}
}

func TestRunTotalBudget(t *testing.T) {
	clock := &stepClock{step: time.Millisecond}
	cfg := testConfig()
	cfg.Clock = clock.Now
	cfg.TotalBudget = 4 * time.Millisecond

	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("a", "b", "c", "d", "e", "f", "g"), cfg)
	r.Start()
	if st := drain(t, r); st != StatusAborted {
		t.Fatalf("status = %v, want aborted", st)
	}
	if n := r.Stats().Processed; n == 0 || n == 7 {
		t.Errorf("processed %d words, want a partial run", n)
	}
}

func TestRunDrawnCancelAborts(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	aborts := 0
	cfg := testConfig()
	cfg.Abort = func() { aborts++ }
	r := newTestRun(t, g, words("a", "b", "c"), cfg)

	n := 0
	g.On(EventDrawn, func(e *Event) {
		n++
		if n == 2 {
			e.Cancel()
		}
	})
	r.Start()
	if st := drain(t, r); st != StatusAborted {
		t.Fatalf("status = %v, want aborted", st)
	}
	if aborts != 1 || r.Stats().Processed != 2 {
		t.Errorf("aborts = %d processed = %d", aborts, r.Stats().Processed)
	}
}

func TestStartVeto(t *testing.T) {
	g, surf := newTestGroup(t, 400, 300)
	off := g.On(EventStart, func(e *Event) { e.Cancel() })
	r := newTestRun(t, g, words("a"), testConfig())
	if r.Start() {
		t.Fatal("vetoed Start() = true")
	}
	if r.State() != StateIdle || r.Step() != StatusIdle {
		t.Error("vetoed run should stay idle")
	}
	if len(surf.cleared) != 0 {
		t.Error("vetoed run should not touch surfaces")
	}

	off()
	if !r.Start() {
		t.Error("Start() after removing the veto = false")
	}
}

func TestNonCancelableEventsIgnoreCancel(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	g.On(EventStop, func(e *Event) { e.Cancel() })
	r := newTestRun(t, g, nil, testConfig())
	r.Start()
	if st := r.Step(); st != StatusCompleted {
		t.Errorf("Step() = %v, want completed", st)
	}
}

func TestRunSuperseded(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	first := newTestRun(t, g, words("a", "b", "c"), testConfig())
	second := newTestRun(t, g, words("x", "y"), testConfig())

	stops := 0
	g.On(EventStop, func(*Event) { stops++ })

	first.Start()
	first.Step()
	second.Start()

	if st := first.Step(); st != StatusSuperseded {
		t.Fatalf("first.Step() = %v, want superseded", st)
	}
	if first.State() != StateSuperseded {
		t.Errorf("first.State() = %v", first.State())
	}
	if first.Stats().Processed != 1 {
		t.Errorf("superseded run processed %d words", first.Stats().Processed)
	}
	if st := drain(t, second); st != StatusCompleted {
		t.Errorf("second run = %v, want completed", st)
	}
	if stops != 1 {
		t.Errorf("stop emitted %d times, want 1", stops)
	}
}

func TestCompletedRunIsNotSuperseded(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	first := newTestRun(t, g, words("a"), testConfig())
	first.Start()
	drain(t, first)

	newTestRun(t, g, words("b"), testConfig()).Start()
	if first.State() != StateCompleted {
		t.Errorf("completed run became %v", first.State())
	}
}

func TestHoverAndClick(t *testing.T) {
	var hovered []*Placement
	var clicked []*Placement
	cfg := testConfig()
	cfg.Hover = func(p *Placement) { hovered = append(hovered, p) }
	cfg.Click = func(p *Placement) { clicked = append(clicked, p) }

	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("hover"), cfg)
	r.Start()
	drain(t, r)
	p := r.Placements()[0]
	inX, inY := inkedPixel(t, r, p)

	r.Hover(1, 1)
	r.Hover(inX, inY)
	r.Hover(inX+1, inY)
	r.Hover(1, 1)
	r.Hover(2, 2)

	// The first move over empty space matches the initial state; moving
	// within the same word or across empty cells does not repeat.
	if len(hovered) != 2 || hovered[0] != p || hovered[1] != nil {
		t.Errorf("hover calls = %v, want [word nil]", hovered)
	}

	r.Click(1, 1)
	r.Click(inX, inY)
	if len(clicked) != 1 || clicked[0] != p {
		t.Errorf("click calls = %v, want [word]", clicked)
	}

	// Another run on the group disarms the listeners.
	newTestRun(t, g, nil, testConfig()).Start()
	r.Click(inX, inY)
	r.Hover(1, 1)
	if len(clicked) != 1 || len(hovered) != 2 {
		t.Error("listeners still armed after another run started")
	}
}

// inkedPixel returns a pixel of a cell occupied by p.
func inkedPixel(t *testing.T, r *Run, p *Placement) (float64, float64) {
	t.Helper()
	for y := p.Rect.Y; y < p.Rect.Y+p.Rect.H; y += 8 {
		for x := p.Rect.X; x < p.Rect.X+p.Rect.W; x += 8 {
			if r.Session().HitTest(float64(x+1), float64(y+1)) == p {
				return float64(x + 1), float64(y + 1)
			}
		}
	}
	t.Fatal("placement has no hit-testable cell")
	return 0, 0
}

func TestDrive(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("a", "b", "c"), testConfig())
	st, err := Drive(context.Background(), r)
	if err != nil || st != StatusCompleted {
		t.Fatalf("Drive() = %v, %v", st, err)
	}
	if r.Stats().Drawn != 3 {
		t.Errorf("drew %d words", r.Stats().Drawn)
	}
}

func TestDriveWait(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	cfg := testConfig()
	cfg.Wait = time.Millisecond
	r := newTestRun(t, g, words("a", "b"), cfg)
	start := time.Now()
	if st, err := Drive(context.Background(), r); err != nil || st != StatusCompleted {
		t.Fatalf("Drive() = %v, %v", st, err)
	}
	if time.Since(start) < 3*time.Millisecond {
		t.Error("Drive() did not wait between words")
	}
}

func TestDriveCanceled(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("a", "b"), testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Drive(ctx, r); err != context.Canceled {
		t.Fatalf("Drive() error = %v, want context.Canceled", err)
	}
	if r.State() != StateRunning || r.Stats().Processed != 0 {
		t.Errorf("State() = %v processed = %d", r.State(), r.Stats().Processed)
	}
}

func TestDriveVetoed(t *testing.T) {
	g, _ := newTestGroup(t, 400, 300)
	g.On(EventStart, func(e *Event) { e.Cancel() })
	st, err := Drive(context.Background(), newTestRun(t, g, words("a"), testConfig()))
	if err != nil || st != StatusIdle {
		t.Errorf("Drive() = %v, %v, want idle", st, err)
	}
}

func TestRotation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	tests := []struct {
		name  string
		cfg   Config
		check func(float64) bool
	}{
		{"ratio zero", Config{RotateRatio: 0, MinRotation: 1, MaxRotation: 2}, func(r float64) bool { return r == 0 }},
		{"fixed angle", Config{RotateRatio: 1, MinRotation: 0.5, MaxRotation: 0.5}, func(r float64) bool { return r == 0.5 }},
		{"two steps", Config{RotateRatio: 1, MinRotation: -math.Pi / 2, MaxRotation: math.Pi / 2, RotationSteps: 2},
			func(r float64) bool { return r == -math.Pi/2 || r == 0 }},
		{"reversed range", Config{RotateRatio: 1, MinRotation: 1, MaxRotation: -1, RotationSteps: 1},
			func(r float64) bool { return r == -1 }},
		{"continuous", Config{RotateRatio: 1, MinRotation: -1, MaxRotation: 1},
			func(r float64) bool { return r >= -1 && r < 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				if r := tt.cfg.rotation(rng); !tt.check(r) {
					t.Fatalf("rotation() = %v", r)
				}
			}
		})
	}
}

func TestRotateRatio(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	cfg := Config{RotateRatio: 0.25, MinRotation: 1, MaxRotation: 1}
	rotated := 0
	for i := 0; i < 4000; i++ {
		if cfg.rotation(rng) != 0 {
			rotated++
		}
	}
	if rotated < 800 || rotated > 1200 {
		t.Errorf("rotated %d of 4000 words, want about 1000", rotated)
	}
}

func TestPalette(t *testing.T) {
	p := Palette{"red", "green"}
	var got []string
	for i := 0; i < 5; i++ {
		got = append(got, p.Color(WordStyle{Index: i}, nil))
	}
	want := []string{"red", "green", "red", "green", "red"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("colors = %v, want %v", got, want)
		}
	}
	if c := (Palette{}).Color(WordStyle{}, nil); c != "black" {
		t.Errorf("empty palette = %q, want black", c)
	}
}

func TestColorStrategyReceivesPlacementGeometry(t *testing.T) {
	var styles []WordStyle
	cfg := testConfig()
	cfg.Color = ColorFunc(func(s WordStyle) string {
		styles = append(styles, s)
		if s.Distance > 3 {
			return "gray"
		}
		return "black"
	})
	g, _ := newTestGroup(t, 400, 300)
	r := newTestRun(t, g, words("first", "second", "third"), cfg)
	r.Start()
	drain(t, r)

	if len(styles) != 3 {
		t.Fatalf("color called %d times", len(styles))
	}
	if styles[0].Distance != 0 || styles[0].Word != "first" || styles[0].FontSize != 40 {
		t.Errorf("first style = %+v", styles[0])
	}
	for i, s := range styles {
		if s.Index != i {
			t.Errorf("style %d has index %d", i, s.Index)
		}
		if s.Distance != r.Placements()[i].Distance {
			t.Errorf("style %d distance %d != placement distance", i, s.Distance)
		}
	}
}

func TestRandomColorsAreSeeded(t *testing.T) {
	a := RandomDark.Color(WordStyle{}, rand.New(rand.NewPCG(5, 5)))
	b := RandomDark.Color(WordStyle{}, rand.New(rand.NewPCG(5, 5)))
	if a != b {
		t.Errorf("RandomDark not deterministic: %q vs %q", a, b)
	}
}

func TestWeightFuncs(t *testing.T) {
	if got := Factor(2.5).Size(4); got != 10 {
		t.Errorf("Factor(2.5).Size(4) = %v", got)
	}
	sq := WeightFn(func(w float64) float64 { return w * w })
	if got := sq.Size(3); got != 9 {
		t.Errorf("WeightFn.Size(3) = %v", got)
	}
}
