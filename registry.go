package lazysignals

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// typeKey is a stable 64-bit key for a concrete value type, derived from
// the type's string form. It is what the engine stores alongside a cell in
// place of static type information.
type typeKey uint64

func keyFor(rt reflect.Type) typeKey {
	return typeKey(xxhash.Sum64String(rt.String()))
}

// capability adapts an untyped stored cell back to the observable
// interface. One is registered per concrete value type.
type capability struct {
	name string
	wrap func(cell any) (observable, bool)
}

// TypeRegistry maps type keys to per-type capabilities. Creating a state
// or computed registers its value type automatically, so a lookup miss
// means a foreign cell was smuggled in; the engine logs and skips it
// rather than corrupting the graph.
type TypeRegistry struct {
	caps map[typeKey]capability
}

func newTypeRegistry() *TypeRegistry {
	return &TypeRegistry{caps: map[typeKey]capability{}}
}

func registerType[T comparable](reg *TypeRegistry) typeKey {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	key := keyFor(rt)
	if _, ok := reg.caps[key]; ok {
		return key
	}
	reg.caps[key] = capability{
		name: rt.String(),
		wrap: func(cell any) (observable, bool) {
			c, ok := cell.(*Cell[T])
			if !ok {
				return nil, false
			}
			return c, true
		},
	}
	return key
}

func (reg *TypeRegistry) lookup(key typeKey) (capability, bool) {
	c, ok := reg.caps[key]
	return c, ok
}
