package outcome

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const emptyMessage = "empty outcome"

// Outcome records whether an operation succeeded. A failed Outcome always
// carries a non-empty message; a successful one never does.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	err       string
	isSuccess bool
}

// New builds an Outcome, returning an error wrapping ErrInvalidState when
// a success is given a message or a failure is given none.
func New(isSuccess bool, message string) (Outcome, error) {
	if isSuccess && message != "" {
		return Outcome{}, invalidState("success outcome cannot have an error %q", message)
	}
	if !isSuccess && message == "" {
		return Outcome{}, invalidState("failure outcome must have an error message")
	}

	return Outcome{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       message,
		isSuccess: isSuccess,
	}, nil
}

func Success() Outcome {
	return must(New(true, ""))
}

// Failure panics with ErrInvalidState if message is empty.
func Failure(message string) Outcome {
	return must(New(false, message))
}

// FromError converts a Go error into an Outcome: nil is a success, anything
// else a failure carrying err.Error().
func FromError(err error) Outcome {
	if IsNil(err) {
		return Success()
	}
	return Failure(err.Error())
}

func (o Outcome) IsSuccess() bool {
	return o.isSuccess
}

// IsFailure is true for every outcome that is not a success, including the
// empty zero value.
func (o Outcome) IsFailure() bool {
	return !o.isSuccess
}

// Err returns the failure message, or "" for a success. An empty outcome
// reports "empty outcome" so that every failure has a message.
func (o Outcome) Err() string {
	if o.IsEmpty() {
		return emptyMessage
	}
	return o.err
}

// AsError returns nil for a success and a *FailureError otherwise.
func (o Outcome) AsError() error {
	if o.isSuccess {
		return nil
	}
	return &FailureError{Message: o.Err()}
}

func (o Outcome) ID() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

// IsEmpty reports whether o is a zero value that no factory produced.
func (o Outcome) IsEmpty() bool {
	return o.id == uuid.Nil
}

func (o Outcome) String() string {
	switch {
	case o.IsEmpty():
		return "empty"
	case o.isSuccess:
		return "success"
	default:
		return "failure: " + o.err
	}
}

func (o Outcome) LogValue() slog.Value {
	return slog.GroupValue(o.attrs()...)
}

func (o Outcome) attrs() []slog.Attr {
	if o.IsEmpty() {
		return []slog.Attr{slog.Bool("empty", true)}
	}

	attrs := []slog.Attr{
		slog.String("id", o.id.String()),
		slog.Bool("success", o.isSuccess),
	}
	if !o.isSuccess {
		attrs = append(attrs, slog.String("error", o.err))
	}
	return attrs
}
