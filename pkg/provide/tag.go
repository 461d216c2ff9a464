// SPDX-License-Identifier: Apache-2.0
// Package provide implements a typed data provision protocol.
//
// A value reachable only through a narrow interface can expose an
// open-ended set of typed data to its callers: the caller builds a request
// for a statically known type, the value answers through a single Provide
// method, and neither side ever names the other's concrete types. See
// pkg/errors for the canonical facade built on top of it.
package provide

import (
	"fmt"
	"reflect"
)

// Category distinguishes how requested data is handed over.
type Category uint8

const (
	// Value means the slot receives an owned copy of the data.
	Value Category = iota
	// Ref means the slot receives a pointer into data owned by the provider.
	Ref
)

// String returns the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case Value:
		return "value"
	case Ref:
		return "ref"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Tag identifies one (type, category) pair. Tags are comparable with ==;
// two tags are equal iff they name the same Go type and the same category.
// Identity is nominal, not structural: a defined type gets a tag distinct
// from its underlying type, which is what lets a provider expose several
// same-shaped pieces of data without collisions.
//
// Tags are built only by generic instantiation, never from names, so
// independent call sites asking for the same type always agree, and
// distinct types can never collide. Construction is pure and O(1); no
// registry is involved.
type Tag struct {
	typ reflect.Type
	cat Category
}

// ValueTag returns the tag for requesting an owned T.
func ValueTag[T any]() Tag {
	return Tag{typ: typeOf[T](), cat: Value}
}

// RefTag returns the tag for requesting a *T whose lifetime is bounded by
// the provider's.
func RefTag[T any]() Tag {
	return Tag{typ: typeOf[T](), cat: Ref}
}

// String renders the tag for logs and test failures.
func (t Tag) String() string {
	if t.typ == nil {
		return "provide.Tag(invalid)"
	}
	return fmt.Sprintf("provide.Tag(%s %s)", t.cat, t.typ)
}

// typeOf resolves T's reflect.Type without materializing a T.
// The pointer indirection keeps interface types resolvable.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
