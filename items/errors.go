package items

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFull is returned when an inventory has no room for a new stack.
var ErrFull = errors.New("items: inventory full")

type MismatchedItemError struct {
	Want Item
	Got  Stack
}

func (e *MismatchedItemError) Error() string {
	return fmt.Sprintf("items: cannot merge %s into a stack of %s", e.Got, e.Want.Name)
}

// TooManyItemsError reports a request above the stack cap.
type TooManyItemsError struct {
	Item     Item
	Overflow int
}

func (e *TooManyItemsError) Error() string {
	return fmt.Sprintf("items: %d %s over the stack limit", e.Overflow, e.Item.Name)
}

// NotEnoughItemsError reports how many of an item are missing.
type NotEnoughItemsError struct {
	Item    Item
	Missing int
}

func (e *NotEnoughItemsError) Error() string {
	return fmt.Sprintf("items: missing %d %s", e.Missing, e.Item.Name)
}

// MissingItemsError is returned by a recipe that cannot be crafted.
type MissingItemsError struct {
	Missing []NotEnoughItemsError
}

func (e *MissingItemsError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("%d %s", m.Missing, m.Item.Name))
	}
	return "items: cannot craft, missing " + strings.Join(parts, ", ")
}
