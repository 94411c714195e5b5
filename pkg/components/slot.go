package components

// SlotComponent 记录实体被分配到的槽位索引
type SlotComponent struct {
	Index int
}
