package entities

import (
	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
)

// NewWeapon 由配置中的武器定义生成武器数值
func NewWeapon(stats config.WeaponStats) components.Weapon {
	return components.Weapon{
		ID:             stats.ID,
		Name:           stats.Name,
		Class:          stats.WeaponClass(),
		Damage:         stats.Damage,
		Range:          stats.Range,
		AttackInterval: stats.AttackInterval,
		Color:          stats.RGBA(),
	}
}
