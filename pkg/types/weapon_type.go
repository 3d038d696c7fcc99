package types

// WeaponType 定义武器的类别
// 类别决定攻击方式：远程类别发射弹道，其余类别为近战范围攻击
type WeaponType int

const (
	// WeaponUnknown 未知武器类别
	WeaponUnknown WeaponType = iota

	WeaponSword      // 剑（初始武器）
	WeaponBow        // 弓（远程）
	WeaponStaff      // 法杖（远程）
	WeaponHammer     // 锤
	WeaponDualBlades // 双刃
)

// WeaponID 常量 - 用于配置文件中的武器类别名
const (
	WeaponIDSword      = "sword"
	WeaponIDBow        = "bow"
	WeaponIDStaff      = "staff"
	WeaponIDHammer     = "hammer"
	WeaponIDDualBlades = "dual_blades"
)

// AllWeaponTypes 返回所有有效的武器类别
func AllWeaponTypes() []WeaponType {
	return []WeaponType{WeaponSword, WeaponBow, WeaponStaff, WeaponHammer, WeaponDualBlades}
}

// IsRanged 远程类别（弓、法杖）发射弹道，其余为近战
func (t WeaponType) IsRanged() bool {
	return t == WeaponBow || t == WeaponStaff
}

// ID 返回武器类别在配置文件中使用的名称
func (t WeaponType) ID() string {
	switch t {
	case WeaponSword:
		return WeaponIDSword
	case WeaponBow:
		return WeaponIDBow
	case WeaponStaff:
		return WeaponIDStaff
	case WeaponHammer:
		return WeaponIDHammer
	case WeaponDualBlades:
		return WeaponIDDualBlades
	default:
		return "unknown"
	}
}

// String 实现 fmt.Stringer
func (t WeaponType) String() string {
	switch t {
	case WeaponSword:
		return "Sword"
	case WeaponBow:
		return "Bow"
	case WeaponStaff:
		return "Staff"
	case WeaponHammer:
		return "Hammer"
	case WeaponDualBlades:
		return "DualBlades"
	default:
		return "Unknown"
	}
}

// WeaponTypeFromID 根据配置名称解析武器类别
func WeaponTypeFromID(id string) (WeaponType, bool) {
	for _, t := range AllWeaponTypes() {
		if t.ID() == id {
			return t, true
		}
	}
	return WeaponUnknown, false
}
