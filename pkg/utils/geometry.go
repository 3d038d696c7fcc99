package utils

import "math"

// Distance 返回两点之间的直线距离
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction 返回从 (x1, y1) 指向 (x2, y2) 的单位向量
// 两点重合时返回零向量
func Direction(x1, y1, x2, y2 float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	d := math.Sqrt(dx*dx + dy*dy)
	if d <= 0 {
		return 0, 0
	}
	return dx / d, dy / d
}

// Clamp 将 v 限制在 [lo, hi] 范围内
// hi < lo 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Rect 轴对齐矩形（左上角 + 宽高，世界坐标）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right 返回右边界X坐标
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom 返回下边界Y坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps AABB 重叠检测
// 四条边均使用严格不等式：仅边缘接触不算重叠
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ContainsPoint 点是否在矩形内（边界包含在内）
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() &&
		y >= r.Y && y <= r.Bottom()
}
