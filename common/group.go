package common

import "strings"

// Group is a bitset of membership tags used for targeting and collision
// filtering.
type Group uint32

const (
	GroupPlayer Group = 1 << iota
	GroupEnemy
	GroupProjectile
	GroupSwitch
	GroupForge

	GroupNone Group = 0
)

var groupNames = []struct {
	g    Group
	name string
}{
	{GroupPlayer, "player"},
	{GroupEnemy, "enemy"},
	{GroupProjectile, "projectile"},
	{GroupSwitch, "switch"},
	{GroupForge, "forge"},
}

func (g Group) Has(other Group) bool { return g&other != 0 }

func (g Group) String() string {
	if g == GroupNone {
		return "none"
	}
	var parts []string
	for _, n := range groupNames {
		if g&n.g != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseGroups turns config names ("enemy", "player") into a Group mask.
// Unknown names are returned so the caller can report them.
func ParseGroups(names []string) (Group, []string) {
	var g Group
	var unknown []string
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for _, n := range groupNames {
			if n.name == name {
				g |= n.g
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, raw)
		}
	}
	return g, unknown
}
