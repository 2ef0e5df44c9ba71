package result

import "context"

// Unit is the value carried by a Result that only signals success.
type Unit struct{}

// Result is either a Success holding a value of type T or a Failure holding
// an *Error. The zero value is a Success holding the zero value of T.
//
// Go methods cannot introduce new type parameters, so the transforming
// operations (Map, Bind, Match) are package functions.
type Result[T any] struct {
	value T
	err   *Error
}

// Success wraps v in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure wraps err in a failed Result. A nil err is a programmer error.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		panic("result.Failure: nil error")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// IsFailure reports whether r holds an error.
func (r Result[T]) IsFailure() bool { return r.err != nil }

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure's error, or nil on success.
func (r Result[T]) Err() *Error { return r.err }

// ValueOr returns the success value, or def on failure.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Tap runs fn on the success value and returns r unchanged.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if fn == nil {
		panic("result.Tap: nil function")
	}
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapFailure runs fn on the failure's error and returns r unchanged.
func (r Result[T]) TapFailure(fn func(*Error)) Result[T] {
	if fn == nil {
		panic("result.TapFailure: nil function")
	}
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Recover substitutes the Result produced by fn when r is a Failure.
func (r Result[T]) Recover(fn func(*Error) Result[T]) Result[T] {
	if fn == nil {
		panic("result.Recover: nil function")
	}
	if r.err == nil {
		return r
	}
	return fn(r.err)
}

// Map applies fn to the success value.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if fn == nil {
		panic("result.Map: nil function")
	}
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Success(fn(r.value))
}

// Bind chains a Result-returning step, short-circuiting on failure.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if fn == nil {
		panic("result.Bind: nil function")
	}
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return fn(r.value)
}

// Match dispatches to exactly one of onSuccess or onFailure.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(*Error) U) U {
	if onSuccess == nil || onFailure == nil {
		panic("result.Match: nil function")
	}
	if r.err != nil {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}

// MatchContext is the blocking form of Match: both branches receive ctx and
// may perform I/O that fails with a plain error.
func MatchContext[T, U any](
	ctx context.Context,
	r Result[T],
	onSuccess func(context.Context, T) (U, error),
	onFailure func(context.Context, *Error) (U, error),
) (U, error) {
	if onSuccess == nil || onFailure == nil {
		panic("result.MatchContext: nil function")
	}
	if r.err != nil {
		return onFailure(ctx, r.err)
	}
	return onSuccess(ctx, r.value)
}

// Require succeeds when cond holds and fails with err otherwise.
func Require(cond bool, err *Error) Result[Unit] {
	if cond {
		return Success(Unit{})
	}
	return Failure[Unit](err)
}

// Combine returns the first failure among results, or Success.
func Combine(results ...Result[Unit]) Result[Unit] {
	for _, r := range results {
		if r.err != nil {
			return r
		}
	}
	return Success(Unit{})
}

// Sequence collects all success values, or returns the first failure.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Result[[]T]{err: r.err}
		}
		values = append(values, r.value)
	}
	return Success(values)
}
