package systems

import "github.com/gonewx/rangerpg/pkg/components"

// ApplyDamage 对生命组件造成伤害
//
// 生命值下限为 0；负数伤害按 0 处理。
// 对已死亡的实体调用是空操作，不会再次触发死亡。
//
// 返回:
//   - bool: 仅当本次伤害导致死亡时返回 true
func ApplyDamage(health *components.HealthComponent, amount float64) bool {
	if health == nil || !health.IsAlive() {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		return true
	}
	return false
}

// ApplyHeal 恢复生命值，上限为最大生命值；负数按 0 处理
// 已死亡的实体不会被治疗复活
func ApplyHeal(health *components.HealthComponent, amount float64) {
	if health == nil || !health.IsAlive() || amount <= 0 {
		return
	}
	health.CurrentHealth = min(health.CurrentHealth+amount, health.MaxHealth)
}
