package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人等可被攻击的实体
//
// 不变式：0 <= CurrentHealth <= MaxHealth；存活 ⇔ CurrentHealth > 0
// 只能通过 systems.ApplyDamage / systems.ApplyHeal 修改
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值
}

// IsAlive 生命值大于 0 即存活
func (h *HealthComponent) IsAlive() bool {
	return h.CurrentHealth > 0
}
