package gesture

import "sync"

// Lock 是所有卡片共享的交互协调对象
//
// 两个互相独立的标志：
//   - busy: 有卡片处于按下、拖拽或归位动画中
//   - rotating: 有卡片处于翻转动画中
//
// 任一标志为 true 时，新的按下操作都会被拒绝。
// 同一时刻每个标志最多只有一个持有者。
type Lock struct {
	mu       sync.Mutex
	busy     bool
	rotating bool
}

// NewLock 创建一个空闲的交互锁
func NewLock() *Lock {
	return &Lock{}
}

// TryBeginInteraction 尝试开始一次交互
// 仅当 busy 和 rotating 都为 false 时成功，并将 busy 置为 true
func (l *Lock) TryBeginInteraction() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy || l.rotating {
		return false
	}
	l.busy = true
	return true
}

// EndInteraction 释放 busy
func (l *Lock) EndInteraction() {
	l.mu.Lock()
	l.busy = false
	l.mu.Unlock()
}

// HandOffToRotation 在一次操作内把 busy 转换为 rotating
// 用于点击触发翻转：翻转只占用旋转锁，不占用交互锁
func (l *Lock) HandOffToRotation() {
	l.mu.Lock()
	l.rotating = true
	l.busy = false
	l.mu.Unlock()
}

// EndRotation 释放 rotating
func (l *Lock) EndRotation() {
	l.mu.Lock()
	l.rotating = false
	l.mu.Unlock()
}

// Busy 报告是否有卡片正在交互
func (l *Lock) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// Rotating 报告是否有卡片正在翻转
func (l *Lock) Rotating() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rotating
}

// Idle 报告两个标志是否都已释放
func (l *Lock) Idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.busy && !l.rotating
}
