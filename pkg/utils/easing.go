package utils

// Approach 指数平滑：将 current 向 target 移动剩余距离的 factor 比例
//
// factor 取值 (0, 1]，1 表示直接跳到目标
// 每帧调用一次时，曲线等价于 EaseOut 的离散形式
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
