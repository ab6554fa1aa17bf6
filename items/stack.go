package items

import "fmt"

// Stack is a count of one item.
type Stack struct {
	Item  Item
	Count int
}

func (s Stack) IsFull() bool { return s.Count >= s.Item.Category.MaxInStack() }

func (s Stack) String() string { return fmt.Sprintf("%dx %s", s.Count, s.Item.Name) }

// Merge moves as much of from into into as the stack cap allows and returns
// what did not fit. ok is false when nothing is left over.
func Merge(into *Stack, from Stack) (rest Stack, ok bool, err error) {
	if into.Item != from.Item {
		return from, true, &MismatchedItemError{Want: into.Item, Got: from}
	}
	if into.IsFull() {
		return from, from.Count > 0, nil
	}
	room := into.Item.Category.MaxInStack() - into.Count
	if from.Count <= room {
		into.Count += from.Count
		return Stack{}, false, nil
	}
	into.Count += room
	from.Count -= room
	return from, true, nil
}
