package storage

import "github.com/arotem3/TensorView/internal/check"

// Owned is a buffer that belongs to a single tensor.
type Owned[T any] struct {
	slots[T]
	alloc Allocator[T]
}

// NewOwned allocates n zero-valued slots. Either all slots are allocated or
// an error is returned.
func NewOwned[T any](mode check.Mode, alloc Allocator[T], n int) (*Owned[T], error) {
	if alloc == nil {
		alloc = Heap[T]()
	}
	buf, err := allocate(alloc, n)
	if err != nil {
		return nil, err
	}
	return &Owned[T]{slots: slots[T]{buf: buf, mode: mode}, alloc: alloc}, nil
}

func (o *Owned[T]) Store(i int, v T) { o.buf[o.at(i)] = v }

func (o *Owned[T]) Ref(i int) *T { return &o.buf[o.at(i)] }

// Resize changes the number of slots to n. Values below min(old, new) are
// kept and new slots are zero. Growing takes a fresh buffer from the
// allocator, so borrows taken before the call no longer alias the tensor.
func (o *Owned[T]) Resize(n int) error {
	if n <= len(o.buf) {
		o.buf = o.buf[:n:n]
		return nil
	}
	buf, err := allocate(o.alloc, n)
	if err != nil {
		return err
	}
	copy(buf, o.buf)
	o.buf = buf
	return nil
}

// Window returns a mutable borrow of the buffer starting at off.
func (o *Owned[T]) Window(off int) *Borrowed[T] {
	return Borrow(o.mode, o.window(off))
}

// ReadOnly returns a read-only borrow of the whole buffer.
func (o *Owned[T]) ReadOnly() *ReadOnly[T] {
	return View(o.mode, o.buf)
}

func allocate[T any](alloc Allocator[T], n int) ([]T, error) {
	if n < 0 {
		return nil, check.Allocf("negative slot count %d", n)
	}
	buf, err := alloc.Alloc(n)
	if err != nil {
		return nil, check.Allocf("allocating %d slots: %v", n, err)
	}
	if len(buf) != n {
		return nil, check.Allocf("allocator returned %d slots, want %d", len(buf), n)
	}
	clear(buf)
	return buf, nil
}
