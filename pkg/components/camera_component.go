package components

// CameraComponent 镜头跟随状态
// 当前偏移存放在 GameState 中，这里只记录本帧计算出的目标与平滑系数
type CameraComponent struct {
	// TargetX, TargetY 目标偏移（已限制在世界范围内）
	TargetX float64
	TargetY float64

	// Smoothing 每帧向目标移动剩余距离的比例，(0, 1]
	Smoothing float64
}
