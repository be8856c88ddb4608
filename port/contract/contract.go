package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new, empty instance of the container under test.
//
// A contract calls Make once per test case,
// so every test case starts from a freshly constructed container.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioural specification of a role interface,
// such as a Stack or a Queue.
//
// Every implementation of the role interface runs the same Contract,
// so an array-backed and a list-backed variant are held to identical expectations.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behaviour of the implementation.
	Test(*testing.T)
	// Benchmark runs the same test cases under *testing.B.
	Benchmark(*testing.B)
}
