// Package shape maps multi-indices onto linear storage offsets.
//
// Axis 0 varies fastest: for extents (e0, e1, e2, ...) the element at
// (i0, i1, i2, ...) lives at i0 + e0*(i1 + e1*(i2 + ...)).
//
// Three shapes share the Shape interface. Dynamic keeps its extents at
// runtime and can be reshaped in place. Fixed has the same layout but is
// immutable once built. Strided is only ever produced by resolving a
// selection that contains ranges; it carries a stride per axis and is never
// contiguous.
package shape
