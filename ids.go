package fab

// IDAllocator hands out unique button ids. It is owned by a Host (or by the
// application when buttons are shared between hosts) and is not safe for
// concurrent use. The zero value is ready to use; the first id is 1.
type IDAllocator struct {
	last uint32
}

// Next returns the next unused id.
func (a *IDAllocator) Next() uint32 {
	a.last++
	return a.last
}
