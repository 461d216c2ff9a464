// SPDX-License-Identifier: Apache-2.0

package provide

// Demand is a single-use request for one (type, category) pair. The request
// entry points create it, hand it to a Provider for the duration of one
// Provide call, and read the slot back afterwards. Providers must not
// retain a Demand past that call.
//
// The slot fills at most once: after a matching offer lands, every further
// offer is a no-op, so a provider that mistakenly offers the same type
// twice still yields a well-defined result (first match wins).
//
// A Demand is owned by exactly one request and is not safe for concurrent
// use; concurrent requests each get their own.
type Demand struct {
	target    Tag
	slot      any
	fulfilled bool
}

func newDemand(target Tag) *Demand {
	return &Demand{target: target}
}

// Fulfilled reports whether an offer has filled the slot. Providers may use
// it to cut a long chain of offers short. It reveals nothing about which
// type was requested; a provider can only probe by making offers.
func (d *Demand) Fulfilled() bool {
	return d.fulfilled
}

// OfferValue offers an owned T, computed lazily. compute runs only when the
// demand targets (T, Value) and the slot is still empty, and then exactly
// once; a mismatched or late offer never evaluates it. Returns d so a
// provider can line up several offers in one expression.
func OfferValue[T any](d *Demand, compute func() T) *Demand {
	if d.fulfilled || d.target != ValueTag[T]() {
		return d
	}
	d.slot = compute()
	d.fulfilled = true
	return d
}

// OfferRef offers a pointer into data the provider already owns. The
// pointer is stored only when the demand targets (T, Ref) and the slot is
// empty. No deferral here: producing a pointer to owned data is cheap.
//
// The pointer's validity is bounded by the provider value's lifetime; the
// requesting caller takes on that bound (see RequestRef).
func OfferRef[T any](d *Demand, ref *T) *Demand {
	if d.fulfilled || d.target != RefTag[T]() {
		return d
	}
	d.slot = ref
	d.fulfilled = true
	return d
}
