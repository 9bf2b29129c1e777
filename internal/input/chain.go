// Package input puts an ordered chain of filters between the game and the raw
// device state. Any consumer that wants keys, buttons or axes asks the Chain;
// a filter can force a query to report "not pressed" while it is registered.
package input

import (
	"slices"

	"go.uber.org/zap"
)

// Phase selects which view of a digital input is being asked about.
type Phase int

const (
	Pressed  Phase = iota // went down this frame
	Down                  // held
	Released              // went up this frame
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Down:
		return "down"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// KeyEscape matches raylib's KEY_ESCAPE code.
const KeyEscape int32 = 256

const (
	ButtonCancel    = "Cancel"
	AxisScrollWheel = "Mouse ScrollWheel"
)

type Kind int

const (
	KindKey Kind = iota
	KindButton
	KindAxis
)

type Query struct {
	Kind  Kind
	Key   int32
	Name  string // button or axis name
	Phase Phase
}

// Source is the unfiltered device state for the current frame.
type Source interface {
	Key(key int32, phase Phase) bool
	Button(name string, phase Phase) bool
	Axis(name string) float32
}

// Filter suppresses every query for which Suppress returns true.
type Filter struct {
	Name     string
	Suppress func(Query) bool
}

type Chain struct {
	src     Source
	filters []Filter
	log     *zap.Logger
}

func NewChain(src Source, log *zap.Logger) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{src: src, log: log}
}

// Register appends f, replacing any filter with the same name, and returns a
// function that removes it again.
func (c *Chain) Register(f Filter) func() {
	c.Remove(f.Name)
	c.filters = append(c.filters, f)
	return func() { c.Remove(f.Name) }
}

func (c *Chain) Remove(name string) {
	c.filters = slices.DeleteFunc(c.filters, func(f Filter) bool { return f.Name == name })
}

func (c *Chain) Registered(name string) bool {
	return slices.ContainsFunc(c.filters, func(f Filter) bool { return f.Name == name })
}

// Raw exposes the unfiltered source to the one consumer that sits above the
// filters (the overlay that registered them).
func (c *Chain) Raw() Source {
	return c.src
}

func (c *Chain) Key(key int32, phase Phase) bool {
	if c.suppressed(Query{Kind: KindKey, Key: key, Phase: phase}) {
		return false
	}
	if c.src == nil {
		return false
	}
	return c.src.Key(key, phase)
}

func (c *Chain) Button(name string, phase Phase) bool {
	if c.suppressed(Query{Kind: KindButton, Name: name, Phase: phase}) {
		return false
	}
	if c.src == nil {
		return false
	}
	return c.src.Button(name, phase)
}

func (c *Chain) Axis(name string) float32 {
	if c.suppressed(Query{Kind: KindAxis, Name: name}) {
		return 0
	}
	if c.src == nil {
		return 0
	}
	return c.src.Axis(name)
}

func (c *Chain) suppressed(q Query) bool {
	for _, f := range c.filters {
		if c.apply(f, q) {
			return true
		}
	}
	return false
}

// apply runs one filter; a panicking filter counts as not suppressing so the
// host keeps receiving input.
func (c *Chain) apply(f Filter, q Query) (hit bool) {
	if f.Suppress == nil {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			c.log.Error("input filter", zap.String("filter", f.Name), zap.Any("panic", rec), zap.Stack("stack"))
			hit = false
		}
	}()
	return f.Suppress(q)
}
