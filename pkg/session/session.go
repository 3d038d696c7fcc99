// Package session 组织一局游戏的逐帧模拟
//
// Session 是模拟的根：它拥有实体、波次状态与所有系统，
// 宿主每帧传入 Δt 与输入快照，渲染器通过 Snapshot 读取只读视图。
package session

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
)

// Summary 一局结束时的结算数据
type Summary struct {
	Wave  int
	Kills int
	Level int
}

// Session 一局游戏
// 非并发安全：Update、Restart 与 Snapshot 必须在同一个 goroutine 中调用
type Session struct {
	config *config.BalanceConfig
	rng    *rand.Rand
	world  *world

	// onGameOver 玩家死亡时回调一次
	onGameOver func(Summary)
}

// New 创建一局新游戏
//
// 参数:
//   - cfg: 数值配置，为 nil 时使用 DefaultBalanceConfig
//   - rng: 随机源，为 nil 时使用固定种子 1
//
// 返回:
//   - *Session: 已生成第 1 波的会话
//   - error: 世界布置失败时返回错误
func New(cfg *config.BalanceConfig, rng *rand.Rand) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultBalanceConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	w, err := newWorld(cfg, rng, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("[Session] New session started (wave %d, %d enemies)", w.gameState.Wave, w.gameState.RequiredThisWave)
	return &Session{config: cfg, rng: rng, world: w}, nil
}

// SetGameOverHandler 设置结束回调（例如提交战绩）
func (s *Session) SetGameOverHandler(fn func(Summary)) {
	s.onGameOver = fn
}

// Update 推进一帧
//
// 结束阶段只处理重开（R 键或点击）。
// 正常阶段的顺序：
//  1. 玩家攻击事件
//  2. 玩家移动与冷却
//  3. 治疗区
//  4. 武器拾取
//  5. 敌人行为与攻击
//  6. 弹道移动与命中
//  7. 粒子
//  8. 压缩死亡实体，检查波次是否清空
//  9. 镜头
func (s *Session) Update(deltaTime float64, input game.InputSnapshot) {
	w := s.world

	if w.gameState.IsGameOver() {
		if input.Restart || input.Attack {
			if err := s.Restart(); err != nil {
				log.Printf("[Session] Restart failed: %v", err)
			}
		}
		return
	}

	if deltaTime < 0 || math.IsNaN(deltaTime) {
		deltaTime = 0
	}

	w.combat.HandleAttack(input)
	w.player.Update(deltaTime, input)
	w.zones.Update(deltaTime)
	w.pickups.Update(deltaTime)
	w.enemies.Update(deltaTime)
	w.projectiles.Update(deltaTime)
	w.particles.Update(deltaTime)

	w.em.RemoveMarkedEntities()
	w.waves.Update()
	w.camera.Update()

	if w.gameState.IsGameOver() {
		summary := s.Summary()
		log.Printf("[Session] Game over: wave=%d kills=%d level=%d", summary.Wave, summary.Kills, summary.Level)
		if s.onGameOver != nil {
			s.onGameOver(summary)
		}
	}
}

// Restart 重新开始
// 新世界完整构建后才替换旧世界；镜头偏移保留并平滑移向新玩家
func (s *Session) Restart() error {
	old := s.world.gameState
	w, err := newWorld(s.config, s.rng, old.CameraX, old.CameraY)
	if err != nil {
		return fmt.Errorf("failed to restart session: %w", err)
	}

	s.world = w
	log.Printf("[Session] Restarted")
	return nil
}

// IsGameOver 是否处于结束阶段
func (s *Session) IsGameOver() bool {
	return s.world.gameState.IsGameOver()
}

// GameState 返回当前的波次与镜头状态（只读使用）
func (s *Session) GameState() *game.GameState {
	return s.world.gameState
}

// Summary 返回当前的结算数据
func (s *Session) Summary() Summary {
	out := Summary{Wave: s.world.gameState.Wave}
	if p, ok := ecs.GetComponent[*components.PlayerComponent](s.world.em, s.world.playerID); ok {
		out.Kills = p.Kills
		out.Level = p.Level
	}
	return out
}
