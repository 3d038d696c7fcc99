package components

// HealthZoneComponent 治疗区
// 矩形由 PositionComponent（左上角）与 CollisionComponent 给出，会话内永不移动
type HealthZoneComponent struct {
	HealRate float64 // 每秒恢复生命值
	Pulse    float64 // 表现用脉冲相位
}
