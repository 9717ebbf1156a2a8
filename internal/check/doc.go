// Package check holds the bounds-checking mode shared by shapes, storages and
// tensors, and the error kinds raised when a check fails.
//
// A Mode is picked once, when a tensor or view is constructed, and every
// value derived from that instance (subviews, transform views, iterators)
// inherits it. In Fast mode no validation runs at all and a violation is
// undefined behavior; Go's own slice bounds checks may still fire.
package check
