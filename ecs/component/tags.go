package component

import "github.com/milk9111/arena/common"

// Tags holds the groups an entity belongs to.
type Tags struct {
	Groups common.Group
}

var TagsComponent = NewComponent[Tags]()
