package outcome

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Of is an Outcome that carries a value of type T when it succeeds. The
// value of a failed Of is never handed out.
type Of[T any] struct {
	base  Outcome
	value T
}

// NewOf builds an Of[T]. A success requires a non-nil value; for a failure
// the given value is discarded and T's zero value is stored instead.
func NewOf[T any](value T, isSuccess bool, message string) (Of[T], error) {
	if isSuccess && IsNil(value) {
		return Of[T]{}, invalidState("success outcome of %T cannot hold a nil value", value)
	}

	base, err := New(isSuccess, message)
	if err != nil {
		return Of[T]{}, err
	}

	if !isSuccess {
		var zero T
		value = zero
	}
	return Of[T]{base: base, value: value}, nil
}

// SuccessOf panics with ErrInvalidState if value is nil.
func SuccessOf[T any](value T) Of[T] {
	return must(NewOf(value, true, ""))
}

// FailureOf panics with ErrInvalidState if message is empty.
func FailureOf[T any](message string) Of[T] {
	var zero T
	return must(NewOf(zero, false, message))
}

// From converts a (value, error) return pair into an Of[T].
//
//	return outcome.From(strconv.Atoi(s))
func From[T any](value T, err error) Of[T] {
	if IsNil(err) {
		return SuccessOf(value)
	}
	return FailureOf[T](err.Error())
}

// Value returns the payload of a successful outcome. It panics with
// ErrInvalidAccess when o is not a success; check IsSuccess first or use Get.
func (o Of[T]) Value() T {
	return must(o.Get())
}

// Get returns the payload, or T's zero value and an error wrapping both
// ErrInvalidAccess and the outcome's *FailureError.
func (o Of[T]) Get() (T, error) {
	if !o.base.isSuccess {
		var zero T
		return zero, invalidAccess(o.base.AsError())
	}
	return o.value, nil
}

// Outcome returns the payload-free view of o.
func (o Of[T]) Outcome() Outcome {
	return o.base
}

func (o Of[T]) IsSuccess() bool {
	return o.base.IsSuccess()
}

func (o Of[T]) IsFailure() bool {
	return o.base.IsFailure()
}

func (o Of[T]) Err() string {
	return o.base.Err()
}

func (o Of[T]) AsError() error {
	return o.base.AsError()
}

func (o Of[T]) ID() uuid.UUID {
	return o.base.ID()
}

func (o Of[T]) CreatedAt() time.Time {
	return o.base.CreatedAt()
}

func (o Of[T]) IsEmpty() bool {
	return o.base.IsEmpty()
}

func (o Of[T]) String() string {
	if o.base.isSuccess {
		return fmt.Sprintf("success(%v)", o.value)
	}
	return o.base.String()
}

func (o Of[T]) LogValue() slog.Value {
	attrs := o.base.attrs()
	if o.base.isSuccess {
		attrs = append(attrs, slog.Any("value", o.value))
	}
	return slog.GroupValue(attrs...)
}
