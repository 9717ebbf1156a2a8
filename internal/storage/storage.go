package storage

import "github.com/arotem3/TensorView/internal/check"

// Reader is read access to element slots 0..Len()-1.
type Reader[T any] interface {
	Load(i int) T
	Len() int
	// Contiguous reports whether slots are a flat, slice-addressable run.
	Contiguous() bool
}

// Storage is read/write access to element slots.
type Storage[T any] interface {
	Reader[T]
	Store(i int, v T)
	// Ref returns a pointer to slot i.
	Ref(i int) *T
}

// Compile-time interface checks.
var (
	_ Storage[float64] = (*Owned[float64])(nil)
	_ Storage[float64] = (*Borrowed[float64])(nil)
	_ Reader[float64]  = (*ReadOnly[float64])(nil)
	_ Reader[float64]  = (*Transformed[float64])(nil)
)

// slots is the bounds-checked slice shared by the owning and borrowing storages.
type slots[T any] struct {
	buf  []T
	mode check.Mode
}

func (s *slots[T]) at(i int) int {
	if s.mode.Checked() {
		if s.buf == nil {
			panic(check.BadAccessf("storage is not bound to a buffer"))
		}
		if i < 0 || i >= len(s.buf) {
			panic(check.Rangef("storage index %d is out of range for length %d", i, len(s.buf)))
		}
	}
	return i
}

func (s *slots[T]) Load(i int) T { return s.buf[s.at(i)] }

func (s *slots[T]) Len() int { return len(s.buf) }

func (s *slots[T]) Contiguous() bool { return true }

// Data returns the underlying slice. Writes through it are visible to every
// view of the same buffer.
func (s *slots[T]) Data() []T { return s.buf }

func (s *slots[T]) window(off int) []T {
	if s.mode.Checked() {
		if s.buf == nil {
			panic(check.BadAccessf("storage is not bound to a buffer"))
		}
		if off < 0 || off > len(s.buf) {
			panic(check.Rangef("window offset %d is out of range for length %d", off, len(s.buf)))
		}
	}
	return s.buf[off:]
}

// Borrowed is a mutable view of a caller-owned slice.
type Borrowed[T any] struct {
	slots[T]
}

// Borrow wraps data without copying. A nil slice yields unbound storage:
// every access through it fails with ErrBadAccess in Strict mode.
func Borrow[T any](mode check.Mode, data []T) *Borrowed[T] {
	return &Borrowed[T]{slots: slots[T]{buf: data, mode: mode}}
}

func (b *Borrowed[T]) Store(i int, v T) { b.buf[b.at(i)] = v }

func (b *Borrowed[T]) Ref(i int) *T { return &b.buf[b.at(i)] }

// Window returns a borrow of the same buffer starting at off.
func (b *Borrowed[T]) Window(off int) *Borrowed[T] {
	return Borrow(b.mode, b.window(off))
}

// ReadOnly returns a read-only borrow of the same buffer.
func (b *Borrowed[T]) ReadOnly() *ReadOnly[T] {
	return View(b.mode, b.buf)
}

// ReadOnly is a read-only view of a caller-owned slice.
type ReadOnly[T any] struct {
	slots[T]
}

// View wraps data for reading only.
func View[T any](mode check.Mode, data []T) *ReadOnly[T] {
	return &ReadOnly[T]{slots: slots[T]{buf: data, mode: mode}}
}

// Window returns a read-only borrow of the same buffer starting at off.
func (r *ReadOnly[T]) Window(off int) *ReadOnly[T] {
	return View(r.mode, r.window(off))
}
