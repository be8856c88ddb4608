package container_test

import (
	"testing"

	"go.llib.dev/dsa/pkg/container"
	"go.llib.dev/dsa/pkg/logger"
	"go.llib.dev/dsa/pkg/logging"
	"go.llib.dev/dsa/port/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestNewArray(t *testing.T) {
	arr, err := container.NewArray[int](4)
	assert.NoError(t, err)
	assert.Equal(t, 4, arr.Cap())
	assert.Equal(t, 0, arr.Len())
	assert.True(t, arr.IsEmpty())

	_, err = container.NewArray[int](-1)
	assert.ErrorIs(t, err, datastruct.ErrInvalidArgument)
}

func TestNewArrayFrom(t *testing.T) {
	arr, err := container.NewArrayFrom(4, []int{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, arr.ToSlice())
	assert.Equal(t, 4, arr.Cap())

	t.Run("capacity smaller than the seed", func(t *testing.T) {
		_, err := container.NewArrayFrom(2, []int{1, 2, 3, 4})
		assert.ErrorIs(t, err, datastruct.ErrInvalidArgument)
	})

	t.Run("the seed is copied", func(t *testing.T) {
		seed := []int{1, 2}
		arr, err := container.NewArrayFrom(2, seed)
		assert.NoError(t, err)
		seed[0] = 42
		assert.Equal(t, []int{1, 2}, arr.ToSlice())
	})
}

func TestArray(t *testing.T) {
	s := testcase.NewSpec(t)

	arr := let.Var(s, func(t *testcase.T) *container.Array[int] {
		return &container.Array[int]{}
	})

	s.Test("the zero value grows from zero capacity by doubling", func(t *testcase.T) {
		var caps []int
		for i := 0; i < 5; i++ {
			arr.Get(t).Append(i)
			caps = append(caps, arr.Get(t).Cap())
		}
		assert.Equal(t, []int{1, 2, 4, 4, 8}, caps)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, arr.Get(t).ToSlice())
	})

	s.When("the array is full", func(s *testcase.Spec) {
		arr.Let(s, func(t *testcase.T) *container.Array[int] {
			a, err := container.NewArrayFrom(4, []int{1, 2, 3, 4})
			assert.NoError(t, err)
			return a
		})

		s.Then("Insert doubles the capacity", func(t *testcase.T) {
			assert.NoError(t, arr.Get(t).Insert(0, 0))
			assert.Equal(t, 8, arr.Get(t).Cap())
			assert.Equal(t, []int{0, 1, 2, 3, 4}, arr.Get(t).ToSlice())
		})

		s.Then("RemoveAt keeps the capacity", func(t *testcase.T) {
			v, err := arr.Get(t).RemoveAt(1)
			assert.NoError(t, err)
			assert.Equal(t, 2, v)
			assert.Equal(t, []int{1, 3, 4}, arr.Get(t).ToSlice())
			assert.Equal(t, 4, arr.Get(t).Cap())
		})

		s.Then("Clear keeps the capacity", func(t *testcase.T) {
			arr.Get(t).Clear()
			assert.True(t, arr.Get(t).IsEmpty())
			assert.Equal(t, 4, arr.Get(t).Cap())
			assert.Empty(t, arr.Get(t).ToSlice())
		})
	})

	s.When("the array is empty", func(s *testcase.Spec) {
		s.Then("index access fails", func(t *testcase.T) {
			_, err := arr.Get(t).Get(0)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			_, err = arr.Get(t).RemoveAt(0)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.ErrorIs(t, arr.Get(t).Set(0, 1), datastruct.ErrIndexOutOfBounds)
			_, ok := arr.Get(t).Lookup(0)
			assert.False(t, ok)
		})

		s.Then("Insert accepts only the zero index", func(t *testcase.T) {
			assert.ErrorIs(t, arr.Get(t).Insert(1, 42), datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, 0, arr.Get(t).Len())
			assert.NoError(t, arr.Get(t).Insert(0, 42))
			assert.Equal(t, []int{42}, arr.Get(t).ToSlice())
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
		})
		s.Before(func(t *testcase.T) {
			arr.Get(t).Append(vs.Get(t)...)
		})

		s.Then("it returns a reference to the stored element", func(t *testcase.T) {
			index := t.Random.IntN(len(vs.Get(t)))
			ptr, err := arr.Get(t).Get(index)
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[index], *ptr)

			*ptr = 42
			got, ok := arr.Get(t).Lookup(index)
			assert.True(t, ok)
			assert.Equal(t, 42, got)
		})

		s.Then("indexes out of the range are rejected", func(t *testcase.T) {
			_, err := arr.Get(t).Get(len(vs.Get(t)))
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			_, err = arr.Get(t).Get(-1)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
		})
	})

	s.Test("Set overwrites in place", func(t *testcase.T) {
		arr.Get(t).Append(1, 2, 3)
		assert.NoError(t, arr.Get(t).Set(1, 42))
		assert.Equal(t, []int{1, 42, 3}, arr.Get(t).ToSlice())
	})

	s.Test("Iter yields the live elements in order", func(t *testcase.T) {
		arr.Get(t).Append(1, 2, 3)
		_, err := arr.Get(t).RemoveAt(2)
		assert.NoError(t, err)

		var got []int
		for v := range arr.Get(t).Iter() {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2}, got)
	})

	s.Test("random inserts and removals follow a slice", func(t *testcase.T) {
		var model []int
		t.Random.Repeat(32, 128, func() {
			if len(model) == 0 || t.Random.Bool() {
				index := t.Random.IntBetween(0, len(model))
				v := t.Random.Int()
				assert.NoError(t, arr.Get(t).Insert(index, v))
				model = append(model[:index], append([]int{v}, model[index:]...)...)
				return
			}
			index := t.Random.IntN(len(model))
			got, err := arr.Get(t).RemoveAt(index)
			assert.NoError(t, err)
			assert.Equal(t, model[index], got)
			model = append(model[:index], model[index+1:]...)
		})
		assert.Equal(t, len(model), arr.Get(t).Len())
		assert.True(t, arr.Get(t).Len() <= arr.Get(t).Cap())
		assert.Equal(t, model, arr.Get(t).ToSlice())
	})
}

func TestArray_growthIsLogged(t *testing.T) {
	t.Run("with the configured logger", func(t *testing.T) {
		l, out := logging.Stub(t)
		arr, err := container.NewArray[string](2, container.WithLogger(l))
		assert.NoError(t, err)

		arr.Append("a", "b")
		assert.Empty(t, out.String())

		arr.Append("c")
		assert.Contain(t, out.String(), `"message":"container: growing array storage"`)
		assert.Contain(t, out.String(), `"from_capacity":2`)
		assert.Contain(t, out.String(), `"to_capacity":4`)
		assert.Contain(t, out.String(), `"length":2`)
		assert.Contain(t, out.String(), `"level":"debug"`)
	})

	t.Run("falls back to logger.Default", func(t *testing.T) {
		out := logger.Stub(t)
		var arr container.Array[int]
		arr.Append(1)
		assert.Contain(t, out.String(), `"to_capacity":1`)
	})

	t.Run("below debug level nothing is written", func(t *testing.T) {
		l, out := logging.Stub(t)
		l.Level = logging.LevelInfo
		arr, err := container.NewArray[int](0, container.WithLogger(l))
		assert.NoError(t, err)
		arr.Append(1, 2, 3)
		assert.Empty(t, out.String())
		assert.Equal(t, 4, arr.Cap())
	})
}
