package systems

import "github.com/gonewx/rangerpg/pkg/components"

// advanceLifetime 扣减剩余寿命（不小于 0）
//
// 返回:
//   - bool: 寿命是否已经耗尽
func advanceLifetime(lifetime *components.LifetimeComponent, deltaTime float64) bool {
	lifetime.Remaining -= deltaTime
	if lifetime.Remaining < 0 {
		lifetime.Remaining = 0
	}
	return lifetime.IsExpired()
}
