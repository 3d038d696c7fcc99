package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/game"
)

// RewardSystem 处理击杀奖励与玩家成长
// 由造成致命伤害的系统（近战、弹道）调用，本身没有每帧更新
type RewardSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.BalanceConfig
	rng           *rand.Rand
}

// NewRewardSystem 创建击杀奖励系统
func NewRewardSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.BalanceConfig, rng *rand.Rand) *RewardSystem {
	return &RewardSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
	}
}

// OnEnemyKilled 结算一次击杀
//
// 玩家获得经验、击杀数加一、本波击杀数加一，
// 按掉落概率在敌人位置（左上角）生成一个随机武器拾取物。
// 敌人实体被标记删除，帧末压缩时移除。
func (s *RewardSystem) OnEnemyKilled(enemyID ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
	if !ok {
		return
	}

	if player, ok := findPlayer(s.entityManager); ok {
		player.player.Kills++
		s.AddExperience(player.player, player.health, enemy.Experience)
	}
	s.gameState.RecordKill()

	if s.rng.Float64() < s.config.Waves.DropChance && len(s.config.Weapons) > 0 {
		stats := s.config.Weapons[s.rng.Intn(len(s.config.Weapons))]
		if _, err := entities.NewWeaponPickupEntity(s.entityManager, entities.NewWeapon(stats), pos.X, pos.Y); err != nil {
			log.Printf("[RewardSystem] Failed to drop weapon: %v", err)
		} else {
			log.Printf("[RewardSystem] %s dropped %s at (%.0f, %.0f)", enemy.Type, stats.Name, pos.X, pos.Y)
		}
	}

	s.entityManager.DestroyEntity(enemyID)
}

// AddExperience 增加经验并检查升级
//
// 经验 >= 等级×100 时升一级：最大生命 +20 并回满，移动速度 +10。
// 每次调用最多升一级，多余的经验留到下一次检查。
//
// 返回:
//   - bool: 是否升级
func (s *RewardSystem) AddExperience(player *components.PlayerComponent, health *components.HealthComponent, amount int) bool {
	if amount < 0 {
		amount = 0
	}
	player.Experience += amount

	if player.Experience < ExperienceToNextLevel(player.Level) {
		return false
	}

	player.Level++
	health.MaxHealth += config.LevelUpMaxHealth
	health.CurrentHealth = health.MaxHealth
	player.Speed += config.LevelUpSpeed

	log.Printf("[RewardSystem] Level up! level=%d maxHealth=%.0f speed=%.0f", player.Level, health.MaxHealth, player.Speed)
	return true
}

// ExperienceToNextLevel 升到下一级所需的累计经验
func ExperienceToNextLevel(level int) int {
	return level * config.ExperiencePerLevel
}
