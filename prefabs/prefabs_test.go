package prefabs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/encounter"
	"github.com/milk9111/arena/items"
)

func TestLoadTuningFromEmbedded(t *testing.T) {
	tun, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 140.0, tun.Player.BaseSpeed)
	assert.Equal(t, 3*time.Second, tun.Player.Aim.MaxAimTime)
	assert.Equal(t, 300*time.Millisecond, tun.Player.Aim.ChargeTime)
	assert.Equal(t, 3, tun.Player.Dash.Chain)
	assert.Equal(t, 100*time.Millisecond, tun.Player.Dash.Invincibility)

	jab, ok := tun.MoveNames["jab"]
	require.True(t, ok)
	assert.Equal(t, jab, tun.Player.Combo.InitialMove)
	mv, ok := tun.Moves.Move(jab)
	require.True(t, ok)
	require.True(t, mv.HasNext)
	assert.Equal(t, tun.MoveNames["cross"], mv.Next)
	assert.True(t, mv.Targets.Has(common.GroupEnemy))

	_, err = tun.Projectiles.ResolveProjectile(tun.Player.Aim.Projectile)
	require.NoError(t, err)
	_, err = tun.Projectiles.ResolveProjectile(tun.Player.Aim.ChargedProjectile)
	require.NoError(t, err)

	assert.Equal(t, 4, tun.Catalog.Len())
	slime, ok := tun.Catalog.Get(0)
	require.True(t, ok)
	assert.NotEmpty(t, slime.Drops)
	assert.Len(t, tun.Recipes, 2)

	assert.True(t, tun.Director.Intermission)
	assert.Len(t, tun.Director.Fixtures, 2)
	assert.Equal(t, 7.0, tun.Budget.Points(3))
}

func TestBuildMovesSkipsBrokenEntries(t *testing.T) {
	moves, names := BuildMoves(MovesSpec{Moves: []MoveSpec{
		{Name: "a", Next: "ghost", CooldownMS: 100},
		{Name: ""},
		{Name: "a"},
		{Name: "b", Next: "a", Targets: []string{"player", "bogus"}},
	}})
	require.Len(t, moves, 2)
	a := moves[names["a"]]
	assert.False(t, a.HasNext)
	assert.Equal(t, 100*time.Millisecond, a.Cooldown)
	b := moves[names["b"]]
	assert.True(t, b.HasNext)
	assert.Equal(t, common.GroupPlayer, b.Targets)
}

func TestBuildCatalogSkipsFreeEnemies(t *testing.T) {
	known := map[string]items.Item{"ore": {Name: "ore"}}
	catalog, colors, err := BuildCatalog(EnemiesSpec{Enemies: []EnemySpec{
		{ID: 1, Name: "free", Cost: 0},
		{ID: 2, Name: "ok", Cost: 2, Drops: []DropRollSpec{{Count: 1, Group: []DropSpec{{Item: "ore", Chance: 1, Max: 1}, {Item: "ghost", Chance: 1}}}}},
	}}, known)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
	ok, found := catalog.Get(2)
	require.True(t, found)
	require.Len(t, ok.Drops, 1)
	assert.Len(t, ok.Drops[0].Group, 1)
	assert.Contains(t, colors, encounter.TemplateID(2))

}

func TestBuildCatalogSkipsDuplicateIDs(t *testing.T) {
	catalog, colors, err := BuildCatalog(EnemiesSpec{Enemies: []EnemySpec{
		{ID: 1, Name: "first", Cost: 1},
		{ID: 1, Name: "second", Cost: 3},
		{ID: 2, Name: "third", Cost: 2},
	}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	kept, found := catalog.Get(1)
	require.True(t, found)
	assert.Equal(t, "first", kept.Name)
	assert.Len(t, colors, 2)
}

func TestBuildItemsRecipes(t *testing.T) {
	byName, recipes := BuildItems(ItemsSpec{
		Items: []ItemSpec{
			{Name: "goo", Category: "raw"},
			{Name: "potion", Effect: "heal", Amount: 5},
			{Name: "weird", Category: "mythic"},
		},
		Recipes: []RecipeSpec{
			{Name: "potion", Input: map[string]int{"goo": 2}, Output: map[string]int{"potion": 1}},
			{Name: "broken", Input: map[string]int{"weird": 1}, Output: map[string]int{"potion": 1}},
		},
	})
	assert.Len(t, byName, 2)
	require.Len(t, recipes, 1)
	assert.Equal(t, items.Heal, recipes[0].Output[0].Item.Use.Kind)
}

func TestArenaBudgetFallsBackToLinear(t *testing.T) {
	spec := ArenaSpec{BudgetScript: "missing.tengo", BudgetSlope: 3, BudgetBase: 2}
	assert.Equal(t, 8.0, spec.Budget().Points(2))
	assert.Equal(t, 5.0, ArenaSpec{}.Budget().Points(2))
}

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "scripts/budget.tengo", cleanScriptPath("budget.tengo"))
	assert.Equal(t, "scripts/budget.tengo", cleanScriptPath("prefabs/scripts/budget.tengo"))
}

func TestWatcherFileFilters(t *testing.T) {
	assert.True(t, isSpecFile("prefabs/moves.yaml"))
	assert.True(t, isSpecFile("/tmp/x/arena.yaml"))
	assert.False(t, isSpecFile("prefabs/notes.yaml"))
	assert.True(t, isScriptFile("prefabs/scripts/budget.TENGO"))
	assert.False(t, isScriptFile("prefabs/budget.yaml"))
}
