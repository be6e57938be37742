// Package mro computes the ancestor resolution order used for class dispatch.
//
// A class's direct bases are the anonymous (embedded) fields of its struct
// type, in declaration order; an embedded *B names base B. The order of a
// class is the C3 linearization of those bases, always ending with the
// universal base any.
package mro

import (
	"reflect"
	"slices"
)

var universal = reflect.TypeOf((*any)(nil)).Elem()

// Universal returns the universal base class, the interface{} type.
func Universal() reflect.Type {
	return universal
}

// Bases returns the direct bases of t. Only struct types have bases.
// Self-embedding (type Node struct{ *Node }) and duplicates are skipped.
func Bases(t reflect.Type) []reflect.Type {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var bases []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		bt := f.Type
		if bt.Kind() == reflect.Pointer {
			bt = bt.Elem()
		}
		if bt == t || bt == universal || slices.Contains(bases, bt) {
			continue
		}
		bases = append(bases, bt)
	}

	return bases
}

var defaultCache = NewCache()

// Of returns the resolution order of t: t itself, its ancestors from most to
// least specific, and finally the universal base. A nil t is treated as the
// universal base. Results are memoised process-wide and must not be modified.
func Of(t reflect.Type) []reflect.Type {
	if t == nil || t == universal {
		return []reflect.Type{universal}
	}
	if order, ok := defaultCache.Get(t); ok {
		return order
	}

	order := linearize(t, map[reflect.Type]bool{}, map[reflect.Type][]reflect.Type{})
	defaultCache.Put(t, order)

	return order
}

// linearize computes the C3 order of t. Bases already on the current path
// are ignored, which cuts embedding cycles such as A{*B}, B{*A}.
func linearize(t reflect.Type, visiting map[reflect.Type]bool, memo map[reflect.Type][]reflect.Type) []reflect.Type {
	if order, ok := memo[t]; ok {
		return order
	}

	visiting[t] = true
	defer delete(visiting, t)

	var bases []reflect.Type
	for _, b := range Bases(t) {
		if !visiting[b] {
			bases = append(bases, b)
		}
	}

	order := []reflect.Type{t}
	if len(bases) == 0 {
		order = append(order, universal)
		memo[t] = order
		return order
	}

	seqs := make([][]reflect.Type, 0, len(bases)+1)
	for _, b := range bases {
		seqs = append(seqs, linearize(b, visiting, memo))
	}
	seqs = append(seqs, bases)

	merged, ok := merge(seqs)
	if !ok {
		// No C3-consistent order exists, e.g. struct{ X; Y } where Y embeds X.
		merged = depthFirst(t, visiting)
	}

	order = append(order, merged...)
	memo[t] = order

	return order
}

// merge is the C3 merge step: repeatedly take the first head that does not
// appear in the tail of any sequence.
func merge(seqs [][]reflect.Type) ([]reflect.Type, bool) {
	var out []reflect.Type
	for {
		live := seqs[:0:0]
		for _, s := range seqs {
			if len(s) > 0 {
				live = append(live, s)
			}
		}
		if len(live) == 0 {
			return out, true
		}
		seqs = live

		var head reflect.Type
		for _, s := range seqs {
			if !inTail(s[0], seqs) {
				head = s[0]
				break
			}
		}
		if head == nil {
			return nil, false
		}

		out = append(out, head)
		for i, s := range seqs {
			if s[0] == head {
				seqs[i] = s[1:]
			}
		}
	}
}

func inTail(t reflect.Type, seqs [][]reflect.Type) bool {
	for _, s := range seqs {
		if slices.Contains(s[1:], t) {
			return true
		}
	}
	return false
}

// depthFirst returns the ancestors of t (excluding t) in left-to-right
// depth-first order, keeping the last occurrence of each type, followed by
// the universal base.
func depthFirst(t reflect.Type, visiting map[reflect.Type]bool) []reflect.Type {
	var walked []reflect.Type
	var walk func(reflect.Type, map[reflect.Type]bool)
	walk = func(c reflect.Type, path map[reflect.Type]bool) {
		path[c] = true
		defer delete(path, c)
		for _, b := range Bases(c) {
			if path[b] || visiting[b] {
				continue
			}
			walked = append(walked, b)
			walk(b, path)
		}
	}
	walk(t, map[reflect.Type]bool{})

	out := make([]reflect.Type, 0, len(walked)+1)
	for i, c := range walked {
		if !slices.Contains(walked[i+1:], c) {
			out = append(out, c)
		}
	}

	return append(out, universal)
}
