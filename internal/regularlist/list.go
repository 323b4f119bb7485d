// Package regularlist provides a plain mutable list of integers. It serves as the counterexample to the versioned
// log: appending changes the list in place and every earlier reference observes the change.
package regularlist

// List is a growable list of integers which is modified in place.
//
// Instances of List are NOT safe for concurrent use.
type List struct {
	values []int
}

// New creates a new empty list.
func New() *List {
	return &List{}
}

// Append adds the value to the end of the list. It returns the same list to allow chaining. Note that every value
// returned from Append refers to the very same list.
func (l *List) Append(value int) *List {
	l.values = append(l.values, value)
	return l
}

// Values returns a copy of all values in append order.
func (l *List) Values() []int {
	result := make([]int, len(l.values))
	copy(result, l.values)
	return result
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	return len(l.values)
}
