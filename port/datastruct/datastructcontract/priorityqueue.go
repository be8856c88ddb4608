package datastructcontract

import (
	"slices"

	"go.llib.dev/dsa/port/contract"
	"go.llib.dev/dsa/port/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"golang.org/x/exp/constraints"
)

func PriorityQueue[T constraints.Ordered](mk contract.Make[datastruct.PriorityQueue[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.PriorityQueue[T] {
		return mk(t)
	})

	drain := func(t *testcase.T) []T {
		var out []T
		for !subject.Get(t).IsEmpty() {
			v, err := subject.Get(t).DeleteMin()
			assert.NoError(t, err)
			out = append(out, v)
		}
		return out
	}

	s.When("the queue is empty", func(s *testcase.Spec) {
		s.Then("Min and DeleteMin fail with ErrEmpty", func(t *testcase.T) {
			_, err := subject.Get(t).Min()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			_, err = subject.Get(t).DeleteMin()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.True(t, subject.Get(t).IsEmpty())
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 32)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Insert(vs.Get(t)...)
		})

		s.Then("the size counts every inserted value", func(t *testcase.T) {
			act(t)

			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
			assert.False(t, subject.Get(t).IsEmpty())
		})

		s.Then("Min is the smallest value and it is not removed", func(t *testcase.T) {
			act(t)

			got, err := subject.Get(t).Min()
			assert.NoError(t, err)
			assert.Equal(t, slices.Min(vs.Get(t)), got)
			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
		})

		s.Then("DeleteMin drains the values in ascending order", func(t *testcase.T) {
			act(t)

			exp := slices.Clone(vs.Get(t))
			slices.Sort(exp)
			assert.Equal(t, exp, drain(t))

			_, err := subject.Get(t).DeleteMin()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
		})

		s.Then("duplicates are all kept", func(t *testcase.T) {
			act(t)
			v := c.makeElem(t)
			subject.Get(t).Insert(v, v, v)

			exp := append(slices.Clone(vs.Get(t)), v, v, v)
			slices.Sort(exp)
			assert.Equal(t, exp, drain(t))
		})

		s.Then("Clear empties the queue, and it can be reused", func(t *testcase.T) {
			act(t)
			subject.Get(t).Clear()
			assert.True(t, subject.Get(t).IsEmpty())
			_, err := subject.Get(t).Min()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)

			v := c.makeElem(t)
			subject.Get(t).Insert(v)
			got, err := subject.Get(t).Min()
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		})
	})

	s.Test("interleaved inserts and deletes always yield the current minimum", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(32, 128, func() {
			if len(model) == 0 || t.Random.IntN(3) != 0 {
				v := c.makeElem(t)
				subject.Get(t).Insert(v)
				model = append(model, v)
				return
			}
			slices.Sort(model)
			got, err := subject.Get(t).DeleteMin()
			assert.NoError(t, err)
			assert.Equal(t, model[0], got)
			model = model[1:]
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
	})

	return s.AsSuite("PriorityQueue")
}
