package encounter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/looplab/fsm"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/items"
)

// Phase is the director's lifecycle state.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseActive       Phase = "active"
	PhaseCleared      Phase = "cleared"
	PhaseIntermission Phase = "intermission"
	PhaseOver         Phase = "over"
)

const (
	eventStart = "start"
	eventClear = "clear"
	eventRest  = "rest"
	eventEnd   = "end"
)

var ErrWaveInProgress = errors.New("encounter: wave in progress")

// SpawnHandle is the spawner's opaque name for something it created.
type SpawnHandle uint64

// FixtureKind is a non-enemy object placed between waves.
type FixtureKind uint8

const (
	FixtureSwitch FixtureKind = iota
	FixtureForge
)

func (k FixtureKind) String() string {
	if k == FixtureForge {
		return "forge"
	}
	return "switch"
}

type Fixture struct {
	Kind     FixtureKind
	Position cp.Vector
}

// Spawner realizes descriptors and fixtures in the world.
type Spawner interface {
	Spawn(d SpawnDescriptor) (SpawnHandle, error)
	SpawnFixture(f Fixture) (SpawnHandle, error)
	Despawn(h SpawnHandle)
}

type DirectorConfig struct {
	Area common.Rect
	// Intermission places Fixtures after every cleared wave (and before the
	// first); the next wave waits for SwitchHit.
	Intermission bool
	Fixtures     []Fixture
}

// Director runs the wave lifecycle: generate, spawn, count defeats, repeat.
type Director struct {
	cfg     DirectorConfig
	gen     *Generator
	catalog *Catalog
	spawner Spawner
	records *Records
	rng     common.Rand
	now     func() time.Time

	fsm      *fsm.FSM
	wave     *Wave
	pending  int
	live     map[SpawnHandle]TemplateID
	fixtures []SpawnHandle

	OnWaveChanged func(w Wave)
}

func NewDirector(cfg DirectorConfig, gen *Generator, catalog *Catalog, spawner Spawner, records *Records, rng common.Rand) *Director {
	if records == nil {
		records = NewRecords()
	}
	if rng == nil {
		rng = common.NewRand(uint64(time.Now().UnixNano()))
	}
	d := &Director{
		cfg:     cfg,
		gen:     gen,
		catalog: catalog,
		spawner: spawner,
		records: records,
		rng:     rng,
		now:     time.Now,
		live:    make(map[SpawnHandle]TemplateID),
	}
	d.fsm = fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(PhaseIdle), string(PhaseCleared), string(PhaseIntermission)}, Dst: string(PhaseActive)},
			{Name: eventClear, Src: []string{string(PhaseActive)}, Dst: string(PhaseCleared)},
			{Name: eventRest, Src: []string{string(PhaseIdle), string(PhaseCleared)}, Dst: string(PhaseIntermission)},
			{Name: eventEnd, Src: []string{string(PhaseIdle), string(PhaseActive), string(PhaseCleared), string(PhaseIntermission)}, Dst: string(PhaseOver)},
		},
		fsm.Callbacks{
			"enter_" + string(PhaseCleared): func(_ context.Context, e *fsm.Event) {
				if d.wave != nil {
					log.Printf("encounter: %s cleared", *d.wave)
				}
			},
		},
	)
	return d
}

// SetClock replaces time.Now, for tests.
func (d *Director) SetClock(now func() time.Time) { d.now = now }

func (d *Director) fire(event string) {
	if err := d.fsm.Event(context.Background(), event); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			log.Printf("encounter: %s: %v", event, err)
		}
	}
}

// Retune swaps the catalog and budget used by waves generated from now on.
// Enemies already spawned keep their templates.
func (d *Director) Retune(catalog *Catalog, budget Budget) {
	if catalog != nil {
		d.catalog = catalog
	}
	if budget != nil {
		d.gen.Budget = budget
	}
}

func (d *Director) Phase() Phase { return Phase(d.fsm.Current()) }

func (d *Director) Pending() int { return d.pending }

// Wave returns the current wave, false before the first one.
func (d *Director) Wave() (Wave, bool) {
	if d.wave == nil {
		return Wave{}, false
	}
	return *d.wave, true
}

func (d *Director) Records() *Records { return d.records }

// Start begins the run: straight into the first wave, or into an
// intermission when fixtures are configured.
func (d *Director) Start() error {
	if d.Phase() != PhaseIdle {
		return fmt.Errorf("encounter: start from %s", d.Phase())
	}
	if d.cfg.Intermission {
		d.rest()
		return nil
	}
	_, err := d.StartWave()
	return err
}

// StartWave retires fixtures, generates the next wave and spawns it. It
// returns how many enemies were realized.
func (d *Director) StartWave() (int, error) {
	if !d.fsm.Can(eventStart) {
		if d.Phase() == PhaseActive {
			return 0, ErrWaveInProgress
		}
		return 0, fmt.Errorf("encounter: start wave from %s", d.Phase())
	}
	d.retireFixtures()

	now := d.now()
	var next Wave
	if d.wave == nil {
		next = InitialWave(now)
	} else {
		next = d.wave.Successor(now)
	}
	d.wave = &next

	spawns := d.gen.Generate(next, d.catalog, d.cfg.Area)
	realized := 0
	for _, s := range spawns {
		h, err := d.spawner.Spawn(s)
		if err != nil {
			log.Printf("encounter: spawn %s at %v: %v", s.Template.Name, s.Position, err)
			continue
		}
		d.live[h] = s.Template.ID
		realized++
	}
	d.pending = realized
	d.fire(eventStart)
	log.Printf("encounter: %s started with %d of %d spawns", next, realized, len(spawns))

	if d.OnWaveChanged != nil {
		d.OnWaveChanged(next)
	}
	if realized == 0 {
		d.fire(eventClear)
	}
	return realized, nil
}

// OnDefeated is called when a spawned enemy dies. It returns the drops the
// enemy yields for the current wave and moves on once the wave is empty.
func (d *Director) OnDefeated(h SpawnHandle) []items.Stack {
	id, ok := d.live[h]
	if !ok {
		log.Printf("encounter: defeat of unknown spawn %d", h)
		return nil
	}
	delete(d.live, h)
	if d.pending > 0 {
		d.pending--
	}

	var drops []items.Stack
	if t, ok := d.catalog.Get(id); ok && d.wave != nil {
		drops = t.Drops.Generate(d.wave.Number(), d.rng)
	}

	if d.pending == 0 && d.Phase() == PhaseActive {
		d.fire(eventClear)
		d.advance()
	}
	return drops
}

// Update keeps the run moving after a wave that realized nothing.
func (d *Director) Update() {
	if d.Phase() == PhaseCleared {
		d.advance()
	}
}

func (d *Director) advance() {
	if d.cfg.Intermission {
		d.rest()
		return
	}
	if _, err := d.StartWave(); err != nil {
		log.Printf("encounter: %v", err)
	}
}

func (d *Director) rest() {
	d.retireFixtures()
	for _, f := range d.cfg.Fixtures {
		h, err := d.spawner.SpawnFixture(f)
		if err != nil {
			log.Printf("encounter: fixture %s: %v", f.Kind, err)
			continue
		}
		d.fixtures = append(d.fixtures, h)
	}
	d.fire(eventRest)
}

// SwitchHit starts the next wave if the director is waiting on it.
func (d *Director) SwitchHit() {
	if d.Phase() != PhaseIntermission {
		return
	}
	if _, err := d.StartWave(); err != nil {
		log.Printf("encounter: %v", err)
	}
}

func (d *Director) retireFixtures() {
	for _, h := range d.fixtures {
		d.spawner.Despawn(h)
	}
	d.fixtures = d.fixtures[:0]
}

// End finishes the run and records the wave reached.
func (d *Director) End() (Record, bool) {
	if d.Phase() == PhaseOver {
		return Record{}, false
	}
	reached := 0
	if d.wave != nil {
		reached = d.wave.Number()
	}
	d.fire(eventEnd)
	return d.records.Add(reached, d.now()), true
}
