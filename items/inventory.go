package items

import (
	"fmt"
	"sort"
)

// Inventory holds at most one stack per item. MaxStacks of zero means no
// limit on distinct items.
type Inventory struct {
	MaxStacks int
	stacks    map[Item]*Stack
}

func NewInventory(maxStacks int) *Inventory {
	return &Inventory{MaxStacks: maxStacks, stacks: make(map[Item]*Stack)}
}

// AttemptAdd stores the stacks and returns whatever overflowed. Overflow is
// not an error; ErrFull is returned only when a new item has no free slot.
func (inv *Inventory) AttemptAdd(stacks ...Stack) ([]Stack, error) {
	if inv.stacks == nil {
		inv.stacks = make(map[Item]*Stack)
	}
	var overflow []Stack
	var full bool
	for _, s := range stacks {
		if s.Count <= 0 {
			continue
		}
		held, ok := inv.stacks[s.Item]
		if !ok {
			if inv.MaxStacks > 0 && len(inv.stacks) >= inv.MaxStacks {
				overflow = append(overflow, s)
				full = true
				continue
			}
			held = &Stack{Item: s.Item}
			inv.stacks[s.Item] = held
		}
		rest, left, err := Merge(held, s)
		if err != nil {
			return overflow, err
		}
		if held.Count == 0 {
			delete(inv.stacks, s.Item)
		}
		if left {
			overflow = append(overflow, rest)
		}
	}
	if full {
		return overflow, ErrFull
	}
	return overflow, nil
}

// Count returns how many of item are held.
func (inv *Inventory) Count(item Item) int {
	if s, ok := inv.stacks[item]; ok {
		return s.Count
	}
	return 0
}

// AttemptTake removes count of item and returns them as a stack.
func (inv *Inventory) AttemptTake(item Item, count int) (Stack, error) {
	if max := item.Category.MaxInStack(); count > max {
		return Stack{}, &TooManyItemsError{Item: item, Overflow: count - max}
	}
	if count <= 0 {
		return Stack{Item: item}, nil
	}
	held := inv.Count(item)
	if held < count {
		return Stack{}, &NotEnoughItemsError{Item: item, Missing: count - held}
	}
	s := inv.stacks[item]
	s.Count -= count
	if s.Count == 0 {
		delete(inv.stacks, item)
	}
	return Stack{Item: item, Count: count}, nil
}

// Stacks lists the held stacks sorted by item name.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, 0, len(inv.stacks))
	for _, s := range inv.stacks {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Name < out[j].Item.Name })
	return out
}

// Find looks a held item up by name.
func (inv *Inventory) Find(name string) (Item, bool) {
	for it := range inv.stacks {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Use takes one of the named item and applies its effect to t.
func (inv *Inventory) Use(name string, t EffectTarget) (Item, error) {
	item, ok := inv.Find(name)
	if !ok {
		return Item{}, fmt.Errorf("items: use %q: %w", name, &NotEnoughItemsError{Item: Item{Name: name}, Missing: 1})
	}
	if !item.Usable() {
		return item, fmt.Errorf("items: %q has no effect", name)
	}
	if _, err := inv.AttemptTake(item, 1); err != nil {
		return item, err
	}
	item.Use.Apply(t)
	return item, nil
}

// FirstUsable returns the alphabetically first held item with an effect.
func (inv *Inventory) FirstUsable() (Item, bool) {
	for _, s := range inv.Stacks() {
		if s.Item.Usable() {
			return s.Item, true
		}
	}
	return Item{}, false
}
