package components

import (
	"image/color"

	"github.com/gonewx/rangerpg/pkg/types"
)

// Weapon 武器数值（值类型）
// 拾取时整体复制给玩家，没有独立的生命周期
type Weapon struct {
	ID             string
	Name           string
	Class          types.WeaponType
	Damage         float64
	Range          float64
	AttackInterval float64 // 攻击间隔（秒），攻击成功后冷却重置为该值
	Color          color.RGBA
}
