// SPDX-License-Identifier: Apache-2.0

package provide

// RequestValue asks p for an owned T. It returns (zero, false) when no
// offer matched; absence is a normal outcome, not an error, and is never
// conflated with a default-constructed value.
func RequestValue[T any](p Provider) (T, bool) {
	d := newDemand(ValueTag[T]())
	p.Provide(d)
	if !d.fulfilled {
		var zero T
		return zero, false
	}
	return d.slot.(T), true
}

// RequestRef asks p for a pointer to a T that p owns. The pointer stays
// valid only while the caller keeps p alive; Go cannot enforce that bound
// statically, so callers that need the data past their use of p must copy
// it (or prefer RequestValue). Storing the pointer in a longer-lived
// structure is a misuse.
func RequestRef[T any](p Provider) (*T, bool) {
	d := newDemand(RefTag[T]())
	p.Provide(d)
	if !d.fulfilled {
		return nil, false
	}
	return d.slot.(*T), true
}

// WithRef scopes a provided *T to fn: acquire, use, release. fn must not
// let the pointer escape. Returns false, without calling fn, when no offer
// matched. This is the discipline of choice when the pointer's validity
// window matters and a copy is too expensive.
func WithRef[T any](p Provider, fn func(*T)) bool {
	ref, ok := RequestRef[T](p)
	if !ok {
		return false
	}
	fn(ref)
	return true
}
