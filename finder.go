package jstore

import (
	"fmt"
	"reflect"
	"sort"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// FindUnserializablePaths walks v breadth-first and returns a $-rooted path
// expression for every sub-value or mapping key that c refuses to encode.
//
// This is slow! One encoder probe per visited node. Only use it for error
// handling.
//
// A node that encodes as a whole is pruned without descending, so the probe
// count stays proportional to the failing region. Containers already visited
// are skipped, so a cyclic value terminates. Mapping keys are probed in
// sorted order to keep the report deterministic across runs.
func FindUnserializablePaths(v any, c Codec) []string {
	type node struct {
		value any
		path  string
	}
	queue := []node{{v, "$"}}
	seen := make(map[uintptr]bool)
	var bad []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, err := c.Encode(cur.value); err == nil {
			// The whole subtree encodes; nothing to report below here.
			continue
		}

		rv := reflect.ValueOf(cur.value)
		for rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv = rv.Elem()
		}

		switch rv.Kind() {
		case reflect.Map:
			if seen[rv.Pointer()] {
				continue
			}
			seen[rv.Pointer()] = true
			keys := rv.MapKeys()
			sort.Slice(keys, func(i, j int) bool {
				return renderKey(keys[i]) < renderKey(keys[j])
			})
			for _, k := range keys {
				if keyEncodes(k, c) {
					queue = append(queue, node{rv.MapIndex(k).Interface(), cur.path + "." + renderKey(k)})
				} else {
					// A bad key subsumes the entry; the value is not inspected.
					bad = append(bad, fmt.Sprintf("%s<key: %s>", cur.path, renderKey(k)))
				}
			}
		case reflect.Slice, reflect.Array:
			if rv.Kind() == reflect.Slice {
				if seen[rv.Pointer()] {
					continue
				}
				seen[rv.Pointer()] = true
			}
			for i := 0; i < rv.Len(); i++ {
				queue = append(queue, node{rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", cur.path, i)})
			}
		default:
			// A scalar with no structure to descend into.
			bad = append(bad, cur.path)
		}
	}
	return bad
}

// keyEncodes probes a mapping key alone, wrapped as a trivial single-entry
// mapping of the key's concrete type. Wrapping matters: codecs accept or
// reject keys by the map's key type, not by the key value.
func keyEncodes(k reflect.Value, c Codec) bool {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			// A nil key has no concrete type to build a typed wrapper
			// from; probe it in an untyped mapping and let the codec
			// judge.
			_, err := c.Encode(map[any]any{nil: nil})
			return err == nil
		}
		k = k.Elem()
	}
	probe := reflect.MakeMapWithSize(reflect.MapOf(k.Type(), anyType), 1)
	probe.SetMapIndex(k, reflect.Zero(anyType))
	_, err := c.Encode(probe.Interface())
	return err == nil
}

func renderKey(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
