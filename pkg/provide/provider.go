// SPDX-License-Identifier: Apache-2.0

package provide

// Provider is the single capability a value implements to answer demands.
//
// Provide attempts any number of offers against d, in any order; all
// communication happens through the demand's slot, and Provide has no
// other side effects. Order only matters when two offers carry the same
// tag, where the first one wins.
//
// Implementations should offer each piece of data under the most specific
// type available. Two unrelated pieces of data sharing a structural type
// (two bare strings, say) collide on the same tag; wrapping each in its
// own defined type keeps them apart.
type Provider interface {
	Provide(d *Demand)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(d *Demand)

// Provide calls f(d).
func (f ProviderFunc) Provide(d *Demand) { f(d) }
