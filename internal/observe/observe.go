// Package observe holds the subscriber list used by the stateful panels to
// announce changes to whoever renders them.
package observe

// List is an ordered set of callbacks. The zero value is ready to use.
// It is not safe for concurrent use; panels are driven from a single UI loop.
type List[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	fn func(T)
}

// Subscribe registers fn and returns a func that removes it again.
// Calling the returned func more than once is harmless.
func (l *List[T]) Subscribe(fn func(T)) (cancel func()) {
	s := &subscriber[T]{fn: fn}
	l.subs = append(l.subs, s)
	return func() {
		for i, cur := range l.subs {
			if cur == s {
				// full slice expression so an in-flight Notify keeps its snapshot
				l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every subscriber in registration order.
func (l *List[T]) Notify(v T) {
	subs := l.subs
	for _, s := range subs {
		s.fn(v)
	}
}

// Len reports the number of active subscribers.
func (l *List[T]) Len() int { return len(l.subs) }
