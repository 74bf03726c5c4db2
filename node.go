package frozenmap

// node describes an occupied slot: the byte range of its key within
// the table's shared buffer.
type node interface {
	span() (ptr, n int)
}

// nodeRef is the constructor side of node. The table engine creates
// and reads slot descriptors through it without knowing whether a
// payload exists.
type nodeRef[N any] interface {
	*N
	node
	init(ptr, n int)
}

// mapNode is the payload-bearing slot variant used by Map.
type mapNode[V any] struct {
	ptr, n int
	val    V
}

func (nd *mapNode[V]) init(ptr, n int)  { nd.ptr, nd.n = ptr, n }
func (nd *mapNode[V]) span() (int, int) { return nd.ptr, nd.n }

// setNode is the payload-less slot variant used by Set.
type setNode struct {
	ptr, n int
}

func (nd *setNode) init(ptr, n int)  { nd.ptr, nd.n = ptr, n }
func (nd *setNode) span() (int, int) { return nd.ptr, nd.n }
