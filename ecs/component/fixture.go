package component

import "github.com/milk9111/arena/encounter"

// Fixture marks an intermission prop (wave switch or forge).
type Fixture struct {
	Kind encounter.FixtureKind
}

var FixtureComponent = NewComponent[Fixture]()
