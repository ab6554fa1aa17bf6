package items

import (
	"fmt"
	"strings"
)

// Category decides how many of an item fit in one stack.
type Category uint8

const (
	Raw Category = iota
	Unique
	Ammo
)

// MaxInStack is the stack cap for c.
func (c Category) MaxInStack() int {
	switch c {
	case Raw:
		return 999
	case Unique:
		return 1
	default:
		return 0
	}
}

func (c Category) String() string {
	switch c {
	case Raw:
		return "raw"
	case Unique:
		return "unique"
	case Ammo:
		return "ammo"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "":
		return Raw, nil
	case "unique":
		return Unique, nil
	case "ammo":
		return Ammo, nil
	}
	return Raw, fmt.Errorf("items: unknown category %q", s)
}

// EffectKind is what using an item does to its holder.
type EffectKind uint8

const (
	NoEffect EffectKind = iota
	Heal
	BumpMaxHP
)

func ParseEffect(s string) (EffectKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoEffect, nil
	case "heal":
		return Heal, nil
	case "bump_max_hp":
		return BumpMaxHP, nil
	}
	return NoEffect, fmt.Errorf("items: unknown effect %q", s)
}

type Effect struct {
	Kind   EffectKind
	Amount float64
}

// Item is a value type; two items are the same item when every field
// matches.
type Item struct {
	Category Category
	Name     string
	Desc     string
	Use      Effect
}

func (i Item) Usable() bool { return i.Use.Kind != NoEffect }

func (i Item) String() string { return i.Name }

// EffectTarget is anything an item effect can act on.
type EffectTarget interface {
	Heal(amount float64)
	BumpMax(amount float64)
}

// Apply runs e against t and reports whether anything happened.
func (e Effect) Apply(t EffectTarget) bool {
	switch e.Kind {
	case Heal:
		t.Heal(e.Amount)
	case BumpMaxHP:
		t.BumpMax(e.Amount)
	default:
		return false
	}
	return true
}
