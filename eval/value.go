package eval

import "fmt"

type Value interface {
	fmt.Stringer
}

type Int int64

func (i Int) String() string {
	return fmt.Sprintf("%d", int64(i))
}

var _ Value = Int(0)

// Unit is the result of statements evaluated for their effect, such as
// variable definitions; REPL-style consumers suppress it.
type Unit struct{}

func (u Unit) String() string {
	return "<unit>"
}

var _ Value = Unit{}
