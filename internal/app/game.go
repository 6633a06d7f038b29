// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"homeland/internal/component"
	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/event"
	"homeland/internal/system"
	"homeland/internal/types"
	"homeland/pkg/pathing"
)

// Snapshot is a read-only summary of the session.
type Snapshot struct {
	Phase            component.Phase
	Coins            int
	XP               int
	CurrentWave      int
	TotalWaves       int
	EnemiesRemaining int // активные лодки плюс ещё не вышедшие в текущей волне
	TowersBuilt      int
	NextMapUnlocked  bool
	Outcome          component.Outcome
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger. Every line is tagged with the session id.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is the phase state machine of one map session. It is driven by a
// single caller and never blocks.
type Game struct {
	content   *defs.Content
	sessionID uuid.UUID
	logger    *slog.Logger

	path        *pathing.Path
	economy     *system.Economy
	progression *system.Progression
	placement   *system.PlacementSystem
	waves       *system.WaveSystem
	combat      *system.CombatSystem
	movement    *system.MovementSystem

	dispatcher *event.Dispatcher
	events     *event.Log

	phase       component.Phase
	resumePhase component.Phase // фаза, в которую вернёт Resume
	outcome     component.Outcome
	enemies     []*component.Enemy
	enemyIDs    types.Sequence
}

// NewGame builds a session over validated content and moves it from Boot
// through MapLoad into the build phase.
func NewGame(content *defs.Content, opts ...Option) (*Game, error) {
	if content == nil {
		return nil, ErrNilContent
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	path, err := pathing.New(content.Map.PathPoints(), config.WorldScale)
	if err != nil {
		return nil, fmt.Errorf("new game: map %s: %w", content.Map.ID, err)
	}
	waves, err := system.NewWaveSystem(content.Waves)
	if err != nil {
		return nil, fmt.Errorf("new game: map %s: %w", content.Map.ID, err)
	}

	g := &Game{
		content:     content,
		sessionID:   uuid.New(),
		logger:      slog.Default(),
		path:        path,
		economy:     system.NewEconomy(content.Map.StartingCoins),
		progression: system.NewProgression(content.Map.StartingXP),
		placement:   system.NewPlacementSystem(content.Map.BuildSlots),
		waves:       waves,
		movement:    system.NewMovementSystem(path),
		dispatcher:  event.NewDispatcher(),
		events:      event.NewLog(),
		phase:       component.PhaseBoot,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("session_id", g.sessionID.String())
	g.combat = system.NewCombatSystem(content.Towers, g.logger)
	g.dispatcher.SubscribeAll(g.events)

	g.setPhase(component.PhaseMapLoad)
	g.emit(event.MapLoaded{MapID: content.Map.ID})
	g.setPhase(component.PhaseBuild)
	return g, nil
}

// Subscribe attaches a listener to every future event. Listeners see events
// after the game's own log.
func (g *Game) Subscribe(listener event.Listener) {
	g.dispatcher.SubscribeAll(listener)
}

func (g *Game) Events() *event.Log { return g.events }

func (g *Game) SessionID() uuid.UUID { return g.sessionID }

func (g *Game) Phase() component.Phase { return g.phase }

func (g *Game) Outcome() component.Outcome { return g.outcome }

func (g *Game) Content() *defs.Content { return g.content }

func (g *Game) Path() *pathing.Path { return g.path }

// TowerDefinition looks up a tower type from the loaded content.
func (g *Game) TowerDefinition(towerType string) (defs.TowerDefinition, bool) {
	def, ok := g.content.Towers[towerType]
	return def, ok
}

// TowerTypes returns the buildable tower types sorted by id.
func (g *Game) TowerTypes() []string {
	return slices.Sorted(maps.Keys(g.content.Towers))
}

func (g *Game) Slots() []defs.BuildSlot { return g.placement.Slots() }

// Towers returns the placed towers in build order.
func (g *Game) Towers() []*component.Tower { return g.placement.Towers() }

func (g *Game) TowerAt(slotID string) (*component.Tower, bool) { return g.placement.TowerAt(slotID) }

// Enemies returns the boats still on the path.
func (g *Game) Enemies() []*component.Enemy {
	return append([]*component.Enemy(nil), g.enemies...)
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:            g.phase,
		Coins:            g.economy.Coins(),
		XP:               g.progression.XP(),
		CurrentWave:      g.waves.CurrentWaveNumber(),
		TotalWaves:       g.waves.TotalWaves(),
		EnemiesRemaining: len(g.enemies) + g.waves.RemainingToSpawn(),
		TowersBuilt:      g.placement.Count(),
		NextMapUnlocked:  g.progression.HasUnlock(g.content.Map.UnlockRequirement.MinXP),
		Outcome:          g.outcome,
	}
}

// Pause freezes the session. Only the build, wave and wave result phases can be paused.
func (g *Game) Pause() error {
	switch g.phase {
	case component.PhaseBuild, component.PhaseWaveRunning, component.PhaseWaveResult:
	default:
		return g.reject("pause", fmt.Errorf("%w: cannot pause in %s", ErrPhaseViolation, g.phase))
	}
	g.resumePhase = g.phase
	g.setPhase(component.PhasePaused)
	return nil
}

// Resume returns to the phase active before Pause.
func (g *Game) Resume() error {
	if g.phase != component.PhasePaused {
		return g.reject("resume", fmt.Errorf("%w: not paused (%s)", ErrPhaseViolation, g.phase))
	}
	g.setPhase(g.resumePhase)
	return nil
}

func (g *Game) setPhase(to component.Phase) {
	from := g.phase
	g.phase = to
	g.logger.Info("phase changed", "from", from.String(), "to", to.String())
	g.emit(event.PhaseChanged{From: from, To: to})
}

func (g *Game) emit(e event.Event) {
	g.dispatcher.Dispatch(e)
}

func (g *Game) reject(command string, err error) error {
	g.logger.Debug("command rejected", "command", command, "phase", g.phase.String(), "err", err)
	return err
}

func (g *Game) requireBuildPhase(command string) error {
	if g.phase.AllowsBuild() {
		return nil
	}
	return fmt.Errorf("%w: %s is not allowed in %s", ErrPhaseViolation, command, g.phase)
}
