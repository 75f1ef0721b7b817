/*
Package cssom provides functionality for CSS styling: selector matching,
specificity ordering, !important override resolution and pseudo-element
bucketing. In other words: the cascade, in miniature.

Overview

Browsers are large and complex pieces of code, a fact that implies that
we should seek out where to reduce complexity. This package implements
only the cascade-resolution pipeline, operating on already-parsed rule
objects:

   flatten conditional rule groups  →  order by specificity
       →  match selectors per element  →  merge declaration blocks

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia, which this package
relies on for selector matching and specificity.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Clients for the styling engine will have to
provide concrete implementations of these interfaces (e.g., see
sub-package douceuradapter). Having interfaces here imposes a
performance hit, but this implementation of CSS-styling will never
trade modularity and clarity for performance. Clients in need for a
production grade browser engine (where performance is key) should opt
for headless versions of the main browser projects.

All resolution operations are pure: no state is retained across calls,
and inputs are never mutated. Repeated queries against the same rule
set re-traverse and re-sort from scratch.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssom.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cssom.cascade")
}
