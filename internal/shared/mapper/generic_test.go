package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	t.Run("nil input returns nil", func(t *testing.T) {
		got := MapSlice(nil, func(i int) string { return strconv.Itoa(i) })
		assert.Nil(t, got)
	})

	t.Run("empty slice returns empty slice", func(t *testing.T) {
		got := MapSlice([]int{}, func(i int) string { return strconv.Itoa(i) })
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("maps every element in order", func(t *testing.T) {
		got := MapSlice([]int{1, 2, 3}, func(i int) string { return fmt.Sprintf("num_%d", i) })
		assert.Equal(t, []string{"num_1", "num_2", "num_3"}, got)
	})
}

func TestMapSliceWithError(t *testing.T) {
	itoa := func(i int) (string, error) { return strconv.Itoa(i), nil }

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSliceWithError(nil, itoa)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("maps every element", func(t *testing.T) {
		got, err := MapSliceWithError([]int{1, 2, 3}, itoa)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		calls := 0
		got, err := MapSliceWithError([]int{1, 2, 3}, func(i int) (string, error) {
			calls++
			if i == 2 {
				return "", errors.New("bad element")
			}
			return strconv.Itoa(i), nil
		})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 2, calls)
	})
}

func TestMapSlicePtrWithID(t *testing.T) {
	type record struct {
		ID    string
		Value int
	}
	type view struct {
		Value int
	}

	toView := func(r *record) (*view, error) { return &view{Value: r.Value}, nil }
	getID := func(r *record) string { return r.ID }

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID(nil, toView, getID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("skips nil inputs", func(t *testing.T) {
		items := []*record{{ID: "a", Value: 1}, nil, {ID: "b", Value: 2}}
		got, err := MapSlicePtrWithID(items, toView, getID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Value)
		assert.Equal(t, 2, got[1].Value)
	})

	t.Run("skips nil outputs", func(t *testing.T) {
		items := []*record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
		got, err := MapSlicePtrWithID(items, func(r *record) (*view, error) {
			if r.Value == 1 {
				return nil, nil
			}
			return &view{Value: r.Value}, nil
		}, getID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Value)
	})

	t.Run("error carries the failing item ID", func(t *testing.T) {
		items := []*record{{ID: "good", Value: 1}, {ID: "broken", Value: 2}}
		_, err := MapSlicePtrWithID(items, func(r *record) (*view, error) {
			if r.ID == "broken" {
				return nil, errors.New("mapping failed")
			}
			return &view{Value: r.Value}, nil
		}, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.Contains(t, err.Error(), "mapping failed")
	})
}

func TestAssign(t *testing.T) {
	t.Run("present source overwrites destination", func(t *testing.T) {
		dst := "before"
		src := "after"
		Assign(&dst, &src)
		assert.Equal(t, "after", dst)
	})

	t.Run("nil source leaves destination untouched", func(t *testing.T) {
		dst := "before"
		Assign(&dst, nil)
		assert.Equal(t, "before", dst)
	})
}

func TestAssignFunc(t *testing.T) {
	t.Run("present source calls the setter", func(t *testing.T) {
		var got int
		src := 7
		AssignFunc(&src, func(v int) { got = v })
		assert.Equal(t, 7, got)
	})

	t.Run("nil source skips the setter", func(t *testing.T) {
		called := false
		AssignFunc[int](nil, func(int) { called = true })
		assert.False(t, called)
	})
}
