package datastructcontract

import (
	"fmt"
	"slices"

	"go.llib.dev/dsa/port/contract"
	"go.llib.dev/dsa/port/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func LinkedList[T any](mk contract.Make[datastruct.LinkedList[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.LinkedList[T] {
		return mk(t)
	})

	s.When("the list is empty", func(s *testcase.Spec) {
		s.Then("it reports no elements", func(t *testcase.T) {
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.True(t, subject.Get(t).IsEmpty())
			assert.Empty(t, subject.Get(t).ToSlice())
		})

		s.Then("GetHead and GetTail fail with an empty, out of bounds error", func(t *testcase.T) {
			_, err := subject.Get(t).GetHead()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)

			_, err = subject.Get(t).GetTail()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
		})

		s.Then("DeleteAt fails and the size stays zero", func(t *testcase.T) {
			_, err := subject.Get(t).DeleteAt(0)
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, 0, subject.Get(t).Len())
		})

		s.Then("GetAt fails", func(t *testcase.T) {
			_, err := subject.Get(t).GetAt(0)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
		})

		s.Then("AddAt with index zero adds the first element", func(t *testcase.T) {
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).AddAt(0, v))
			assert.Equal(t, 1, subject.Get(t).Len())

			head, err := subject.Get(t).GetHead()
			assert.NoError(t, err)
			tail, err := subject.Get(t).GetTail()
			assert.NoError(t, err)
			assert.Equal(t, v, *head)
			assert.Equal(t, v, *tail)
		})

		s.Then("AddAt past the end fails and the size stays zero", func(t *testcase.T) {
			assert.ErrorIs(t, subject.Get(t).AddAt(1, c.makeElem(t)), datastruct.ErrIndexOutOfBounds)
			assert.ErrorIs(t, subject.Get(t).AddAt(-1, c.makeElem(t)), datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, 0, subject.Get(t).Len())
		})
	})

	s.When("the list has elements", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 3, 7)
		})
		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(vs.Get(t)...)
		})

		s.Then("the elements keep the insertion order", func(t *testcase.T) {
			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
			assert.Equal(t, vs.Get(t), subject.Get(t).ToSlice())

			var got []T
			for v := range subject.Get(t).Iter() {
				got = append(got, v)
			}
			assert.Equal(t, vs.Get(t), got)
		})

		s.Then("GetAt returns each element by its position", func(t *testcase.T) {
			for i, exp := range vs.Get(t) {
				got, err := subject.Get(t).GetAt(i)
				assert.NoError(t, err)
				assert.Equal(t, exp, *got)
			}
		})

		s.Then("GetAt rejects indexes outside of the range", func(t *testcase.T) {
			_, err := subject.Get(t).GetAt(len(vs.Get(t)))
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			_, err = subject.Get(t).GetAt(-1)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
		})

		s.Then("GetAt gives a reference to the stored value", func(t *testcase.T) {
			index := t.Random.IntN(len(vs.Get(t)))
			ptr, err := subject.Get(t).GetAt(index)
			assert.NoError(t, err)
			nv := c.makeElem(t)
			*ptr = nv

			exp := slices.Clone(vs.Get(t))
			exp[index] = nv
			assert.Equal(t, exp, subject.Get(t).ToSlice())
		})

		s.Then("GetHead and GetTail point to the ends", func(t *testcase.T) {
			head, err := subject.Get(t).GetHead()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[0], *head)

			tail, err := subject.Get(t).GetTail()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[len(vs.Get(t))-1], *tail)
		})

		s.Then("AddAt inserts at any position from zero to the length", func(t *testcase.T) {
			index := t.Random.IntBetween(0, len(vs.Get(t)))
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).AddAt(index, v))

			exp := slices.Insert(slices.Clone(vs.Get(t)), index, v)
			assert.Equal(t, exp, subject.Get(t).ToSlice())
			assert.Equal(t, len(exp), subject.Get(t).Len())
		})

		s.Then("AddAt rejects indexes beyond the length", func(t *testcase.T) {
			err := subject.Get(t).AddAt(len(vs.Get(t))+1, c.makeElem(t))
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, vs.Get(t), subject.Get(t).ToSlice())
		})

		s.Then("DeleteAt removes and returns the element at the position", func(t *testcase.T) {
			index := t.Random.IntN(len(vs.Get(t)))
			got, err := subject.Get(t).DeleteAt(index)
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[index], got)

			exp := slices.Delete(slices.Clone(vs.Get(t)), index, index+1)
			assert.Equal(t, exp, subject.Get(t).ToSlice())
			assert.Equal(t, len(exp), subject.Get(t).Len())
		})

		s.Then("DeleteAt rejects indexes outside of the range", func(t *testcase.T) {
			_, err := subject.Get(t).DeleteAt(len(vs.Get(t)))
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			_, err = subject.Get(t).DeleteAt(-1)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
		})

		s.Then("deleting the tail moves the tail to the previous element", func(t *testcase.T) {
			last := len(vs.Get(t)) - 1
			_, err := subject.Get(t).DeleteAt(last)
			assert.NoError(t, err)

			tail, err := subject.Get(t).GetTail()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[last-1], *tail)

			v := c.makeElem(t)
			subject.Get(t).Append(v)
			assert.Equal(t, append(slices.Clone(vs.Get(t)[:last]), v), subject.Get(t).ToSlice())
		})

		s.Then("deleting every element leaves an empty list that can be reused", func(t *testcase.T) {
			for range vs.Get(t) {
				_, err := subject.Get(t).DeleteAt(0)
				assert.NoError(t, err)
			}
			assert.True(t, subject.Get(t).IsEmpty())
			_, err := subject.Get(t).GetTail()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)

			v := c.makeElem(t)
			subject.Get(t).Append(v)
			assert.Equal(t, []T{v}, subject.Get(t).ToSlice())
		})

		s.Then("iteration can be stopped early", func(t *testcase.T) {
			var n int
			for range subject.Get(t).Iter() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	})

	s.Test("random edits follow a slice", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(32, 128, func() {
			switch {
			case len(model) == 0 || t.Random.IntN(3) == 0:
				index := t.Random.IntBetween(0, len(model))
				v := c.makeElem(t)
				assert.NoError(t, subject.Get(t).AddAt(index, v))
				model = slices.Insert(model, index, v)
			case t.Random.Bool():
				v := c.makeElem(t)
				subject.Get(t).Append(v)
				model = append(model, v)
			default:
				index := t.Random.IntN(len(model))
				got, err := subject.Get(t).DeleteAt(index)
				assert.NoError(t, err)
				assert.Equal(t, model[index], got)
				model = slices.Delete(model, index, index+1)
			}
			assert.Equal(t, len(model), subject.Get(t).Len(),
				assert.Message(fmt.Sprintf("model: %v", model)))
		})
		assert.Equal(t, model, subject.Get(t).ToSlice())
	})

	return s.AsSuite("LinkedList")
}
