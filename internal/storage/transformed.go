package storage

// Transformed computes f(inner[i]) on every access. Mapping a Transformed
// storage again fuses the functions over the original inner storage, so a
// chain of transforms is always one level deep.
type Transformed[T any] struct {
	inner  any
	fetch  func(i int) T
	offset int
	n      int
}

// Map wraps inner with f. If inner is itself Transformed, the result reads
// the same underlying storage through the composed function.
func Map[S, T any](f func(S) T, inner Reader[S]) *Transformed[T] {
	if t, ok := inner.(*Transformed[S]); ok {
		fetch := t.fetch
		return &Transformed[T]{
			inner:  t.inner,
			fetch:  func(i int) T { return f(fetch(i)) },
			offset: t.offset,
			n:      t.n,
		}
	}
	return &Transformed[T]{
		inner: inner,
		fetch: func(i int) T { return f(inner.Load(i)) },
		n:     inner.Len(),
	}
}

func (t *Transformed[T]) Load(i int) T { return t.fetch(t.offset + i) }

func (t *Transformed[T]) Len() int { return t.n }

func (t *Transformed[T]) Contiguous() bool { return false }

// Inner returns the untransformed storage the function reads from.
func (t *Transformed[T]) Inner() any { return t.inner }

// Window returns the same transform starting at off.
func (t *Transformed[T]) Window(off int) *Transformed[T] {
	return &Transformed[T]{inner: t.inner, fetch: t.fetch, offset: t.offset + off, n: t.n - off}
}
