package game

// InputSnapshot 一帧的输入快照
// 由宿主在每个 tick 之前采集，模拟核心只读取不修改
type InputSnapshot struct {
	// 持续按住的移动意图
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// 指针的世界坐标（已加上摄像机偏移）
	AimX float64
	AimY float64

	// 本帧触发的离散事件
	Attack  bool // 主攻击（鼠标左键按下）
	Restart bool // 请求重开（R 键）
}

// InputSource 输入来源
// Poll 通过 gs.ScreenToWorld 把指针换算到世界坐标
type InputSource interface {
	Poll(gs *GameState) InputSnapshot
}

// MoveAxes 把方向意图合成为 -1/0/1 的轴向值，相反方向互相抵消
func (in InputSnapshot) MoveAxes() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
