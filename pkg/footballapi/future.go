package footballapi

import (
	"context"

	"github.com/sourcegraph/conc/panics"
)

// Executor runs completion callbacks. A UI loop would post to its own thread;
// Inline runs them on the goroutine that finished the request.
type Executor func(func())

// Inline is the default Executor.
func Inline(fn func()) { fn() }

// Future is a single-assignment async result. It resolves exactly once.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn on its own goroutine and returns immediately. A panic inside fn
// resolves the future with an error instead of crashing the process.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		var pc panics.Catcher
		pc.Try(func() {
			f.value, f.err = fn(ctx)
		})
		if r := pc.Recovered(); r != nil {
			var zero T
			f.value, f.err = zero, r.AsError()
		}
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the future resolves or ctx ends. Abandoning the wait does
// not stop the underlying request.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the future resolves.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

// Then schedules cb on exec after resolution. Each registration fires once.
// A panic inside cb is recovered and dropped.
func (f *Future[T]) Then(exec Executor, cb func(T, error)) {
	if cb == nil {
		return
	}
	if exec == nil {
		exec = Inline
	}
	go func() {
		<-f.done
		exec(func() {
			var pc panics.Catcher
			pc.Try(func() { cb(f.value, f.err) })
		})
	}()
}

// Dispatch issues req in the background and delivers the decoded result to
// done, once, through exec. The returned future resolves to the same outcome.
func Dispatch[T Payload](ctx context.Context, c *Client, req Request, exec Executor, done func(T, error)) *Future[T] {
	f := Go(ctx, func(ctx context.Context) (T, error) {
		return Fetch[T](ctx, c, req)
	})
	f.Then(exec, done)
	return f
}

// CallAsync is the asynchronous form of Call.
func CallAsync[T Payload](ctx context.Context, c *Client, op Operation, p Params, exec Executor, done func(T, error)) *Future[T] {
	f := Go(ctx, func(ctx context.Context) (T, error) {
		return Call[T](ctx, c, op, p)
	})
	f.Then(exec, done)
	return f
}
