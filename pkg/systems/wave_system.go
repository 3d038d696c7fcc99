package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/types"
)

// 世界边缘编号（出生点）
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// regularEnemyOrder 普通波次权重的累加顺序
var regularEnemyOrder = []types.EnemyType{types.EnemyGrunt, types.EnemyArcher, types.EnemyTank}

// WaveSystem 波次导演
//
// 第 N 波：N 为首领间隔的倍数时在随机位置生成 1 个首领，需击杀数为 1；
// 否则在四条世界边缘随机生成 base + (N-1)×perWave 个按权重抽取职业的敌人。
// 本波击杀数达到要求且场上没有敌人时立即进入下一波，没有间歇。
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.BalanceConfig
	rng           *rand.Rand
}

// NewWaveSystem 创建波次系统
func NewWaveSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.BalanceConfig, rng *rand.Rand) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
	}
}

// Update 检查本波是否清空，清空则推进到下一波
//
// 必须在帧末压缩死亡实体之后调用。
//
// 返回:
//   - bool: 是否开始了新的一波
func (s *WaveSystem) Update() bool {
	if !s.IsWaveCleared() {
		return false
	}
	s.SpawnWave(s.gameState.Wave + 1)
	return true
}

// IsWaveCleared 本波击杀数达到要求且场上没有存活敌人
func (s *WaveSystem) IsWaveCleared() bool {
	if s.gameState.KilledThisWave < s.gameState.RequiredThisWave {
		return false
	}
	return s.LiveEnemyCount() == 0
}

// LiveEnemyCount 场上（未被标记删除的）敌人数量
func (s *WaveSystem) LiveEnemyCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// IsBossWave 第 wave 波是否为首领波
func (s *WaveSystem) IsBossWave(wave int) bool {
	return wave%s.config.Waves.BossInterval == 0
}

// EnemyCountForWave 普通波次的敌人数量
func (s *WaveSystem) EnemyCountForWave(wave int) int {
	return s.config.Waves.BaseEnemies + (wave-1)*s.config.Waves.EnemiesPerWave
}

// SpawnWave 开始第 wave 波并生成敌人
//
// 返回:
//   - int: 实际生成的敌人数量
func (s *WaveSystem) SpawnWave(wave int) int {
	if s.IsBossWave(wave) {
		s.gameState.StartWave(wave, 1)
		spawned := s.spawnBoss()
		log.Printf("[WaveSystem] Wave %d: BOSS", wave)
		return spawned
	}

	count := s.EnemyCountForWave(wave)
	s.gameState.StartWave(wave, count)

	spawned := 0
	for i := 0; i < count; i++ {
		x, y := s.randomEdgePosition()
		enemyType := s.ClassifyEnemy(s.rng.Float64())
		if _, err := entities.NewEnemyEntity(s.entityManager, s.config, enemyType, x, y); err != nil {
			log.Printf("[WaveSystem] Failed to spawn %s: %v", enemyType, err)
			continue
		}
		spawned++
	}

	log.Printf("[WaveSystem] Wave %d: spawned %d enemies", wave, spawned)
	return spawned
}

func (s *WaveSystem) spawnBoss() int {
	margin := s.config.Waves.BossMargin
	x := s.rng.Float64()*(config.WorldWidth-2*margin) + margin
	y := s.rng.Float64()*(config.WorldHeight-2*margin) + margin

	if _, err := entities.NewEnemyEntity(s.entityManager, s.config, types.EnemyBoss, x, y); err != nil {
		log.Printf("[WaveSystem] Failed to spawn boss: %v", err)
		return 0
	}
	return 1
}

// randomEdgePosition 在随机一条世界边缘上取一点
func (s *WaveSystem) randomEdgePosition() (float64, float64) {
	switch s.rng.Intn(4) {
	case edgeTop:
		return s.rng.Float64() * config.WorldWidth, 0
	case edgeRight:
		return config.WorldWidth, s.rng.Float64() * config.WorldHeight
	case edgeBottom:
		return s.rng.Float64() * config.WorldWidth, config.WorldHeight
	default:
		return 0, s.rng.Float64() * config.WorldHeight
	}
}

// ClassifyEnemy 按权重把 [0, 1) 内的随机数映射为敌人职业
// 默认权重下：< 0.5 步兵，< 0.8 弓手，其余重装
func (s *WaveSystem) ClassifyEnemy(roll float64) types.EnemyType {
	total := 0
	for _, t := range regularEnemyOrder {
		total += s.config.Waves.Weights[t.ID()]
	}
	if total <= 0 {
		return types.EnemyGrunt
	}

	scaled := roll * float64(total)
	cumulative := 0
	last := types.EnemyGrunt
	for _, t := range regularEnemyOrder {
		weight := s.config.Waves.Weights[t.ID()]
		if weight <= 0 {
			continue
		}
		cumulative += weight
		last = t
		if scaled < float64(cumulative) {
			return t
		}
	}
	return last
}
