package components

// PlayerComponent 玩家专属状态
// 每个会话恰好存在一个拥有此组件的实体
type PlayerComponent struct {
	Weapon         Weapon  // 当前装备
	AttackCooldown float64 // 攻击冷却（秒），<= 0 时可以攻击
	Speed          float64 // 移动速度（像素/秒），升级时增加
	Experience     int     // 累计经验（升级不扣除）
	Level          int
	Kills          int
}
