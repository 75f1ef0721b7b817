/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree mirrors the element nodes of an HTML parse tree, attaching
to each node the styles the cascade resolved for it: the base style map
and the style maps of its pseudo-elements, if any. Using the builder,
clients create a styled tree from an HTML parse tree and a CSSOM in a
single pass.

Styling and layout of HTML/CSS involves a lot of operations on trees.
Cascade resolution is a synchronous, stateless-per-call computation, so
styled nodes are plain mutable nodes without any concurrency machinery;
a styled tree, once built, is meant to be read-only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssom.dom")
}
