package session

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/systems"
)

// world 一局游戏的全部可变状态
// 重开时整体替换，渲染器永远看不到半初始化的世界
type world struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	playerID  ecs.EntityID

	rewards     *systems.RewardSystem
	combat      *systems.CombatSystem
	player      *systems.PlayerSystem
	zones       *systems.HealthZoneSystem
	pickups     *systems.PickupSystem
	enemies     *systems.EnemyBehaviorSystem
	projectiles *systems.ProjectileSystem
	particles   *systems.ParticleSystem
	waves       *systems.WaveSystem
	camera      *systems.CameraSystem
}

// newWorld 创建并布置一个新世界，第 1 波已生成
//
// 参数:
//   - cfg: 数值配置
//   - rng: 随机源（整局共享）
//   - cameraX, cameraY: 初始镜头偏移
func newWorld(cfg *config.BalanceConfig, rng *rand.Rand, cameraX, cameraY float64) (*world, error) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	gs.SetCamera(cameraX, cameraY)

	rewards := systems.NewRewardSystem(em, gs, cfg, rng)
	w := &world{
		em:          em,
		gameState:   gs,
		rewards:     rewards,
		combat:      systems.NewCombatSystem(em, rewards, rng),
		player:      systems.NewPlayerSystem(em),
		zones:       systems.NewHealthZoneSystem(em, rng),
		pickups:     systems.NewPickupSystem(em, rng),
		enemies:     systems.NewEnemyBehaviorSystem(em, gs, rng),
		projectiles: systems.NewProjectileSystem(em, gs, rewards, rng),
		particles:   systems.NewParticleSystem(em),
		waves:       systems.NewWaveSystem(em, gs, cfg, rng),
		camera:      systems.NewCameraSystem(em, gs),
	}

	playerID, err := entities.NewPlayerEntity(em, cfg, config.WorldWidth/2, config.WorldHeight/2)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	w.playerID = playerID

	if err := w.setupWorldObjects(cfg, rng); err != nil {
		return nil, err
	}

	w.waves.SpawnWave(1)
	return w, nil
}

// setupWorldObjects 放置治疗区与开局武器
func (w *world) setupWorldObjects(cfg *config.BalanceConfig, rng *rand.Rand) error {
	for i, zone := range cfg.World.HealthZones {
		if _, err := entities.NewHealthZoneEntity(w.em, zone); err != nil {
			return fmt.Errorf("failed to create health zone %d: %w", i, err)
		}
	}

	margin := cfg.World.PickupMargin
	for _, id := range cfg.World.InitialPickups {
		stats, ok := cfg.GetWeapon(id)
		if !ok {
			return fmt.Errorf("initial pickup %q not found", id)
		}
		x := rng.Float64()*(config.WorldWidth-2*margin) + margin
		y := rng.Float64()*(config.WorldHeight-2*margin) + margin
		if _, err := entities.NewWeaponPickupEntity(w.em, entities.NewWeapon(stats), x, y); err != nil {
			return fmt.Errorf("failed to place %s: %w", id, err)
		}
	}
	return nil
}
