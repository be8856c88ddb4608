package datastructcontract

import (
	"go.llib.dev/dsa/port/contract"
	"go.llib.dev/dsa/port/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func Queue[T any](mk contract.Make[datastruct.Queue[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Queue[T] {
		return mk(t)
	})

	s.When("the queue is empty", func(s *testcase.Spec) {
		s.Then("it reports no elements", func(t *testcase.T) {
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Then("Dequeue fails with ErrEmpty and the size is unchanged", func(t *testcase.T) {
			_, err := subject.Get(t).Dequeue()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.Equal(t, 0, subject.Get(t).Len())
		})

		s.Then("Front and Back fail with ErrEmpty", func(t *testcase.T) {
			_, err := subject.Get(t).Front()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			_, err = subject.Get(t).Back()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
		})
	})

	s.Describe("#Enqueue", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 7)
		})
		act := let.Act0(func(t *testcase.T) {
			for _, v := range vs.Get(t) {
				subject.Get(t).Enqueue(v)
			}
		})

		s.Then("every enqueue grows the size by one", func(t *testcase.T) {
			for i, v := range vs.Get(t) {
				subject.Get(t).Enqueue(v)
				assert.Equal(t, i+1, subject.Get(t).Len())
			}
		})

		s.Then("Front is the first and Back is the last enqueued value", func(t *testcase.T) {
			act(t)

			front, err := subject.Get(t).Front()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[0], *front)

			back, err := subject.Get(t).Back()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[len(vs.Get(t))-1], *back)

			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
		})

		s.Then("Dequeue yields the values in enqueue order", func(t *testcase.T) {
			act(t)

			var got []T
			for !subject.Get(t).IsEmpty() {
				v, err := subject.Get(t).Dequeue()
				assert.NoError(t, err)
				got = append(got, v)
			}
			assert.Equal(t, vs.Get(t), got)

			_, err := subject.Get(t).Dequeue()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			assert.Equal(t, 0, subject.Get(t).Len())
		})

		s.Then("after draining, the queue can be reused", func(t *testcase.T) {
			act(t)
			for !subject.Get(t).IsEmpty() {
				_, err := subject.Get(t).Dequeue()
				assert.NoError(t, err)
			}

			v := c.makeElem(t)
			subject.Get(t).Enqueue(v)
			front, err := subject.Get(t).Front()
			assert.NoError(t, err)
			back, err := subject.Get(t).Back()
			assert.NoError(t, err)
			assert.Equal(t, v, *front)
			assert.Equal(t, v, *back)
		})
	})

	s.Test("interleaved operations follow a slice based queue", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(16, 64, func() {
			if t.Random.Bool() {
				v := c.makeElem(t)
				subject.Get(t).Enqueue(v)
				model = append(model, v)
				return
			}
			v, err := subject.Get(t).Dequeue()
			if len(model) == 0 {
				assert.ErrorIs(t, err, datastruct.ErrEmpty)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, model[0], v)
			model = model[1:]
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
	})

	return s.AsSuite("Queue")
}
