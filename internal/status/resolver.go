package status

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

const Unknown = "Status unknown"

type Stats struct {
	Level int
	Class string
}

// ActiveInstance is a sim currently simulated in the world. Stats is nil when
// the entity has no stats component yet.
type ActiveInstance struct {
	Name  string
	Stats *Stats
}

type TrackedSim struct {
	Name  string
	Level int
}

type ActiveRegistry interface {
	ActiveInstances() []ActiveInstance
}

type TrackingRegistry interface {
	TrackedSims() []TrackedSim
}

// Resolver turns a friend name into the one-line status shown under it in the
// overlay. It only reads the registries.
type Resolver struct {
	active   ActiveRegistry
	tracking TrackingRegistry
	log      *zap.Logger
}

func NewResolver(active ActiveRegistry, tracking TrackingRegistry, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{active: active, tracking: tracking, log: log}
}

func (r *Resolver) Resolve(name string) (out string) {
	if r == nil {
		return Unknown
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("resolve sim status", zap.String("name", name), zap.Any("panic", rec))
			out = Unknown
		}
	}()

	if present(r.active) {
		for _, inst := range r.active.ActiveInstances() {
			if inst.Name != name || inst.Stats == nil {
				continue
			}
			class := inst.Stats.Class
			if class == "" {
				class = "Unknown"
			}
			return fmt.Sprintf("Level %d %s", inst.Stats.Level, class)
		}
	}
	if present(r.tracking) {
		for _, sim := range r.tracking.TrackedSims() {
			if sim.Name == name {
				return fmt.Sprintf("Level %d (Offline)", sim.Level)
			}
		}
	}
	return Unknown
}

// present reports whether a registry is usable; a typed nil pointer stored in
// the interface counts as absent.
func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
