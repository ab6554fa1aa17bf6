package items

import "sort"

// Ingredient is one input of a recipe.
type Ingredient struct {
	Item  Item
	Count int
}

// Recipe turns a set of held items into output stacks.
type Recipe struct {
	Name   string
	Input  []Ingredient
	Output []Stack
}

// Missing reports what inv lacks to craft r.
func (r Recipe) Missing(inv *Inventory) []NotEnoughItemsError {
	var missing []NotEnoughItemsError
	for _, in := range r.Input {
		if held := inv.Count(in.Item); held < in.Count {
			missing = append(missing, NotEnoughItemsError{Item: in.Item, Missing: in.Count - held})
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Item.Name < missing[j].Item.Name })
	return missing
}

// AttemptCraft consumes the inputs and adds the outputs. Nothing is taken
// when any input is short. Returned stacks are outputs that did not fit.
func (r Recipe) AttemptCraft(inv *Inventory) ([]Stack, error) {
	for _, in := range r.Input {
		if max := in.Item.Category.MaxInStack(); in.Count > max {
			return nil, &TooManyItemsError{Item: in.Item, Overflow: in.Count - max}
		}
	}
	if missing := r.Missing(inv); len(missing) > 0 {
		return nil, &MissingItemsError{Missing: missing}
	}
	for _, in := range r.Input {
		if _, err := inv.AttemptTake(in.Item, in.Count); err != nil {
			return nil, err
		}
	}
	overflow, err := inv.AttemptAdd(r.Output...)
	if err == ErrFull {
		return overflow, nil
	}
	return overflow, err
}
