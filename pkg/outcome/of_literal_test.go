package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

type account struct {
	ID string
}

// Outside the package the only literal is the empty one; it never reports
// success and never hands out its payload slot.
func TestOf_LiteralIsNeverSuccess(t *testing.T) {
	t.Parallel()

	lit := outcome.Of[*account]{}
	require.False(t, lit.IsSuccess())
	require.True(t, lit.IsEmpty())

	v, err := lit.Get()
	require.Nil(t, v)
	require.ErrorIs(t, err, outcome.ErrInvalidAccess)
	require.Panics(t, func() { lit.Value() })

	require.Panics(t, func() { outcome.Of[int]{}.Value() })
}

func TestOf_OutcomeViewIsACopy(t *testing.T) {
	t.Parallel()

	f := outcome.FailureOf[*account]("gone")
	view := f.Outcome()
	require.True(t, view.IsFailure())
	view = outcome.Success()
	require.True(t, view.IsSuccess())

	require.True(t, f.IsFailure())
	require.Equal(t, "gone", f.Err())
	_, err := f.Get()
	require.ErrorIs(t, err, outcome.ErrInvalidAccess)
}
