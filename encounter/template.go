package encounter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/arena/items"
)

var (
	ErrDuplicateTemplate = errors.New("encounter: duplicate template id")
	ErrInvalidCost       = errors.New("encounter: template cost must be positive")
)

// TemplateID identifies an enemy template in a Catalog.
type TemplateID int

// EnemyTemplate describes an opponent kind the generator may pick.
type EnemyTemplate struct {
	ID            TemplateID
	Name          string
	Cost          float64
	Health        float64
	AvailableFrom int
	// Exclusions name templates that may not share a wave with this one.
	Exclusions []TemplateID

	Speed         float64
	ContactDamage float64
	Radius        float64
	Drops         items.DropTable
}

func (t EnemyTemplate) excludes(id TemplateID) bool {
	for _, x := range t.Exclusions {
		if x == id {
			return true
		}
	}
	return false
}

// Catalog is an immutable set of templates keyed by id.
type Catalog struct {
	templates []EnemyTemplate
	byID      map[TemplateID]int
}

// NewCatalog validates and indexes the templates. Order of iteration is by
// ascending id.
func NewCatalog(templates ...EnemyTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]EnemyTemplate, 0, len(templates)),
		byID:      make(map[TemplateID]int, len(templates)),
	}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTemplate, t.ID)
		}
		if t.Cost <= 0 {
			return nil, fmt.Errorf("%w: %d (%s) costs %v", ErrInvalidCost, t.ID, t.Name, t.Cost)
		}
		c.byID[t.ID] = -1
		c.templates = append(c.templates, t)
	}
	sort.Slice(c.templates, func(i, j int) bool { return c.templates[i].ID < c.templates[j].ID })
	for i, t := range c.templates {
		c.byID[t.ID] = i
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

func (c *Catalog) Get(id TemplateID) (EnemyTemplate, bool) {
	if c == nil {
		return EnemyTemplate{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return EnemyTemplate{}, false
	}
	return c.templates[i], true
}

// Eligible returns the templates available at wave index.
func (c *Catalog) Eligible(wave int) []EnemyTemplate {
	if c == nil {
		return nil
	}
	var out []EnemyTemplate
	for _, t := range c.templates {
		if t.AvailableFrom <= wave {
			out = append(out, t)
		}
	}
	return out
}

// All returns a copy of every template.
func (c *Catalog) All() []EnemyTemplate {
	if c == nil {
		return nil
	}
	out := make([]EnemyTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}
