package sweep

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool, shouldIndex bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf(ErrNonSimplePolyline, "kaboom %d", 42)
		}

		if shouldPanic {
			panic("true panic")
		}

		if shouldIndex {
			var empty []int
			_ = empty[3]
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom 42: polyline is not simple")
		assert.ErrorIs(t, err, ErrNonSimplePolyline)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true, false)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		err := testFn(false, false, true)
		assert.ErrorIs(t, err, ErrInternalInvariant)
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}

func TestKind(t *testing.T) {
	assert.Nil(t, Kind(nil))
	assert.Nil(t, Kind(errors.New("something else")))
	assert.Equal(t, ErrDuplicatePoint, Kind(errors.Wrap(ErrDuplicatePoint, "points 1 and 3")))
	assert.Equal(t, ErrInvalidState, Kind(errors.Wrapf(errors.Wrap(ErrInvalidState, "inner"), "outer")))
}
