// Package storage provides element access by linear index over owned,
// borrowed and lazily transformed buffers.
//
// Owned buffers are allocated through an Allocator and belong to exactly one
// tensor. Borrowed and ReadOnly storages wrap a caller's slice and never
// allocate; the caller keeps the buffer alive and must not reslice it away
// underneath a view. Transformed storage computes f(inner[i]) on every
// access and never caches.
package storage
