package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/types"
)

// 测试玩家默认位置（左上角），中心为 (1020, 720)
const (
	testPlayerX = 1000.0
	testPlayerY = 700.0
)

// testWorld 系统测试共用的最小世界：一个玩家，没有敌人
type testWorld struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cfg      *config.BalanceConfig
	rng      *rand.Rand
	rewards  *RewardSystem
	playerID ecs.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	cfg := config.DefaultBalanceConfig()
	rng := rand.New(rand.NewSource(1))

	playerID, err := entities.NewPlayerEntity(em, cfg, testPlayerX, testPlayerY)
	if err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}

	return &testWorld{
		em:       em,
		gs:       gs,
		cfg:      cfg,
		rng:      rng,
		rewards:  NewRewardSystem(em, gs, cfg, rng),
		playerID: playerID,
	}
}

func (w *testWorld) player(t *testing.T) *playerRef {
	t.Helper()
	p, ok := findPlayer(w.em)
	if !ok {
		t.Fatal("Player not found")
	}
	return p
}

// spawnEnemyAt 创建敌人，使其中心位于 (cx, cy)
func (w *testWorld) spawnEnemyAt(t *testing.T, enemyType types.EnemyType, cx, cy float64) ecs.EntityID {
	t.Helper()
	stats, _ := w.cfg.GetEnemyStats(enemyType)
	id, err := entities.NewEnemyEntity(w.em, w.cfg, enemyType, cx-stats.Width/2, cy-stats.Height/2)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", enemyType, err)
	}
	return id
}

func (w *testWorld) equip(t *testing.T, weaponID string) {
	t.Helper()
	stats, ok := w.cfg.GetWeapon(weaponID)
	if !ok {
		t.Fatalf("Unknown weapon %s", weaponID)
	}
	w.player(t).player.Weapon = entities.NewWeapon(stats)
}

func (w *testWorld) health(t *testing.T, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](w.em, id)
	if !ok {
		t.Fatalf("Entity %d has no HealthComponent", id)
	}
	return h
}

func (w *testWorld) countWith(t *testing.T, kind string) int {
	t.Helper()
	switch kind {
	case "projectile":
		return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em))
	case "particle":
		return len(ecs.GetEntitiesWith1[*components.ParticleComponent](w.em))
	case "pickup":
		return len(ecs.GetEntitiesWith1[*components.WeaponPickupComponent](w.em))
	case "enemy":
		return len(ecs.GetEntitiesWith1[*components.EnemyComponent](w.em))
	}
	t.Fatalf("unknown kind %q", kind)
	return 0
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
