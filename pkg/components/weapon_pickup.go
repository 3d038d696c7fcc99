package components

// WeaponPickupComponent 地面上的武器拾取物
// PositionComponent 为中心点，碰撞盒为固定大小的正方形
type WeaponPickupComponent struct {
	Weapon   Weapon
	Bob      float64 // 表现用浮动相位
	Rotation float64 // 表现用旋转角度（弧度）
}
