package components

import (
	"image/color"

	"github.com/gonewx/rangerpg/pkg/types"
)

// EnemyState 敌人的行为状态
type EnemyState int

const (
	// EnemyIdle 刚生成，尚未执行过行为更新
	EnemyIdle EnemyState = iota
	// EnemyChasing 与玩家距离大于攻击距离，向玩家移动
	EnemyChasing
	// EnemyAttacking 玩家在攻击距离内，停止移动并攻击
	EnemyAttacking
)

// String 实现 fmt.Stringer
func (s EnemyState) String() string {
	switch s {
	case EnemyChasing:
		return "chasing"
	case EnemyAttacking:
		return "attacking"
	default:
		return "idle"
	}
}

// EnemyComponent 敌人专属状态
// 职业与数值在创建后不再改变，只有冷却与状态随帧变化
type EnemyComponent struct {
	Type              types.EnemyType
	Speed             float64
	Damage            float64
	AttackRange       float64
	AttackCooldown    float64 // 当前冷却（秒），不会小于 0
	AttackCooldownMax float64 // 每次攻击后重置的冷却
	Experience        int     // 击杀奖励经验
	State             EnemyState
	Color             color.RGBA
}
