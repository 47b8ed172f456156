package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"snowfall/internal/brush"
	"snowfall/internal/core"
	simcore "snowfall/pkg/core"
	"snowfall/pkg/snow"
)

// Field is what the console loop needs from a simulation.
type Field interface {
	simcore.Sim
	Stats() snow.Stats
	Paint(x, y int, payload uint16) bool
}

// Options controls the console loop.
type Options struct {
	TPS int
	// Frames stops the loop after this many steps; 0 runs until quit.
	Frames int
	Seed   int64
	// OnFrame, if set, is called after every step.
	OnFrame func(snow.Stats)
}

// Loop drives a Field on a tcell screen.
type Loop struct {
	screen   tcell.Screen
	field    Field
	renderer *Renderer
	brush    *brush.Brush
	opts     Options

	paused   bool
	tickOnce bool
	steps    int
}

// NewLoop wires field to screen. The screen must already be initialized.
func NewLoop(screen tcell.Screen, field Field, opts Options) *Loop {
	return &Loop{
		screen:   screen,
		field:    field,
		renderer: NewRenderer(screen),
		brush:    brush.New(),
		opts:     opts,
	}
}

// Run steps and draws until ctx is done, the user quits or the frame limit
// is reached.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	timer := core.NewFixedStep(l.opts.TPS)
	ticker := time.NewTicker(timer.Interval() / 2)
	defer ticker.Stop()

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !l.Handle(ev) {
				return nil
			}
			l.draw()
		case <-ticker.C:
			if !timer.ShouldStep() {
				continue
			}
			if l.Tick() {
				l.draw()
			}
			if l.Done() {
				return nil
			}
		}
	}
}

// Tick advances one frame unless paused and reports whether it did.
func (l *Loop) Tick() bool {
	if l.paused && !l.tickOnce {
		return false
	}
	l.tickOnce = false
	l.field.Step()
	l.steps++
	if l.opts.OnFrame != nil {
		l.opts.OnFrame(l.field.Stats())
	}
	return true
}

// Done reports whether the frame limit was reached.
func (l *Loop) Done() bool {
	return l.opts.Frames > 0 && l.steps >= l.opts.Frames
}

// Paused reports whether stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// Handle applies one input event and reports whether the loop should go on.
func (l *Loop) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return l.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := CellAt(ev.Position())
			l.field.Paint(x, y, l.brush.Next())
		}
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *Loop) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		l.paused = !l.paused
	case 'n', 'N':
		l.tickOnce = true
		l.Tick()
	case 'r', 'R':
		l.field.Reset(l.opts.Seed)
	case 's', 'S':
		l.field.Reset(time.Now().UnixNano())
	}
	return true
}

func (l *Loop) draw() {
	size := l.field.Size()
	st := l.field.Stats()
	l.renderer.Draw(l.field.Pixels(), size.W, size.H, Status(st, l.paused))
}
