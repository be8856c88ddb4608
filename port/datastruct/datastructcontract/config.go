// Package datastructcontract holds the behavioural contracts of the datastruct role interfaces.
//
// An implementation proves it is a drop-in replacement for the others
// by running the contract of every role it claims:
//
//	datastructcontract.Stack[int](func(tb testing.TB) datastruct.Stack[int] {
//		return &container.ArrayStack[int]{}
//	}).Test(t)
package datastructcontract

import (
	"testing"

	"go.llib.dev/dsa/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem creates a random element for the container under test.
	// By default the testcase random fixture generator is used.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}

func (c Config[T]) makeElems(t *testcase.T, min, max int) []T {
	return random.Slice(t.Random.IntBetween(min, max), func() T {
		return c.makeElem(t)
	})
}

func toConfig[T any](opts []Option[T]) Config[T] {
	return option.ToConfig[Config[T]](opts)
}
