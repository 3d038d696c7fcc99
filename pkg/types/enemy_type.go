// Package types 定义共享的基础类型
package types

// EnemyType 定义敌人的职业类型
// 创建后不可变
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota

	EnemyGrunt  // 步兵：近战，数量最多
	EnemyArcher // 弓手：远程，发射弹道
	EnemyTank   // 重装：高血量，移动缓慢
	EnemyBoss   // 首领：每 5 波出现一次
)

// EnemyID 常量 - 用于配置文件中的敌人键名
const (
	EnemyIDGrunt  = "grunt"
	EnemyIDArcher = "archer"
	EnemyIDTank   = "tank"
	EnemyIDBoss   = "boss"
)

// AllEnemyTypes 返回所有有效的敌人类型（按配置顺序）
func AllEnemyTypes() []EnemyType {
	return []EnemyType{EnemyGrunt, EnemyArcher, EnemyTank, EnemyBoss}
}

// ID 返回敌人类型在配置文件中使用的键名
func (t EnemyType) ID() string {
	switch t {
	case EnemyGrunt:
		return EnemyIDGrunt
	case EnemyArcher:
		return EnemyIDArcher
	case EnemyTank:
		return EnemyIDTank
	case EnemyBoss:
		return EnemyIDBoss
	default:
		return "unknown"
	}
}

// String 实现 fmt.Stringer
func (t EnemyType) String() string {
	switch t {
	case EnemyGrunt:
		return "Grunt"
	case EnemyArcher:
		return "Archer"
	case EnemyTank:
		return "Tank"
	case EnemyBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// EnemyTypeFromID 根据配置键名解析敌人类型
func EnemyTypeFromID(id string) (EnemyType, bool) {
	for _, t := range AllEnemyTypes() {
		if t.ID() == id {
			return t, true
		}
	}
	return EnemyUnknown, false
}
