package datastructcontract

import (
	"slices"

	"go.llib.dev/dsa/port/contract"
	"go.llib.dev/dsa/port/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func Stack[T any](mk contract.Make[datastruct.Stack[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Stack[T] {
		return mk(t)
	})

	s.When("the stack is empty", func(s *testcase.Spec) {
		s.Then("it reports no elements", func(t *testcase.T) {
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Then("Pop fails with an empty, out of bounds error and the size is unchanged", func(t *testcase.T) {
			_, err := subject.Get(t).Pop()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, 0, subject.Get(t).Len())
		})

		s.Then("Top fails the same way", func(t *testcase.T) {
			ptr, err := subject.Get(t).Top()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.Nil(t, ptr)
		})
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 7)
		})
		act := let.Act0(func(t *testcase.T) {
			for _, v := range vs.Get(t) {
				subject.Get(t).Push(v)
			}
		})

		s.Then("every push grows the size by one", func(t *testcase.T) {
			for i, v := range vs.Get(t) {
				subject.Get(t).Push(v)
				assert.Equal(t, i+1, subject.Get(t).Len())
			}
			assert.False(t, subject.Get(t).IsEmpty())
		})

		s.Then("the last pushed value is on the top", func(t *testcase.T) {
			act(t)

			top, err := subject.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[len(vs.Get(t))-1], *top)
			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len(), "Top doesn't remove")
		})

		s.Then("Pop yields the values in reverse push order", func(t *testcase.T) {
			act(t)

			var got []T
			for !subject.Get(t).IsEmpty() {
				v, err := subject.Get(t).Pop()
				assert.NoError(t, err)
				got = append(got, v)
			}
			exp := slices.Clone(vs.Get(t))
			slices.Reverse(exp)
			assert.Equal(t, exp, got)
			assert.Equal(t, 0, subject.Get(t).Len())

			_, err := subject.Get(t).Pop()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
		})

		s.Then("Top gives a reference to the stored value", func(t *testcase.T) {
			act(t)

			top, err := subject.Get(t).Top()
			assert.NoError(t, err)
			nv := c.makeElem(t)
			*top = nv

			got, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, nv, got)
		})
	})

	s.Test("interleaved pushes and pops follow a slice based stack", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(16, 64, func() {
			if t.Random.Bool() {
				v := c.makeElem(t)
				subject.Get(t).Push(v)
				model = append(model, v)
				return
			}
			v, err := subject.Get(t).Pop()
			if len(model) == 0 {
				assert.ErrorIs(t, err, datastruct.ErrEmpty)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
	})

	return s.AsSuite("Stack")
}
