package orderbook

// LevelMap is an ordered map from price to price level, one per side of the
// book. It is a skip list: forward links at random heights give O(log n)
// point lookups for the limit path, while the base level is doubly linked so
// matching can walk best-first in either direction without allocation.
// Handles returned by GetOrCreate stay valid until the level is deleted.

const (
	maxHeight = 16
	// promotion odds are 1 in 4 per additional link level
	branchMask = 3
)

type levelNode struct {
	key     float64
	level   *PriceLevel
	forward []*levelNode
	back    *levelNode // base-level link toward lower prices
}

type LevelMap struct {
	head   *levelNode // sentinel; forward[h] is the first node of height > h
	last   *levelNode // highest-priced node, nil when empty
	height int
	size   int
	rnd    uint64
}

// NewLevelMap constructs an empty map.
func NewLevelMap() *LevelMap {
	return &LevelMap{
		head:   &levelNode{forward: make([]*levelNode, maxHeight)},
		height: 1,
		rnd:    0x9e3779b97f4a7c15,
	}
}

func (m *LevelMap) Size() int { return m.size }

// randomHeight draws from a geometric distribution via xorshift, capped at
// maxHeight. The generator needs no seeding and no locking: the map is only
// mutated under the book's writer lock.
func (m *LevelMap) randomHeight() int {
	x := m.rnd
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	m.rnd = x

	h := 1
	for x&branchMask == 0 && h < maxHeight {
		h++
		x >>= 2
	}
	return h
}

// seek positions path[h] at the rightmost node strictly below price on each
// link level and returns the candidate node at or above price.
func (m *LevelMap) seek(price float64, path *[maxHeight]*levelNode) *levelNode {
	n := m.head
	for h := m.height - 1; h >= 0; h-- {
		for n.forward[h] != nil && n.forward[h].key < price {
			n = n.forward[h]
		}
		if path != nil {
			path[h] = n
		}
	}
	return n.forward[0]
}

// Find returns the level at exactly price, or nil.
func (m *LevelMap) Find(price float64) *PriceLevel {
	if c := m.seek(price, nil); c != nil && c.key == price {
		return c.level
	}
	return nil
}

// GetOrCreate returns the level at price, inserting an empty one if absent.
func (m *LevelMap) GetOrCreate(price float64) *PriceLevel {
	var path [maxHeight]*levelNode
	if c := m.seek(price, &path); c != nil && c.key == price {
		return c.level
	}

	h := m.randomHeight()
	for m.height < h {
		path[m.height] = m.head
		m.height++
	}

	n := &levelNode{
		key:     price,
		level:   &PriceLevel{Price: price},
		forward: make([]*levelNode, h),
	}
	for i := 0; i < h; i++ {
		n.forward[i] = path[i].forward[i]
		path[i].forward[i] = n
	}

	n.back = path[0]
	if n.forward[0] != nil {
		n.forward[0].back = n
	} else {
		m.last = n
	}

	m.size++
	return n.level
}

// Delete removes the level at price. Reports whether a level was removed.
func (m *LevelMap) Delete(price float64) bool {
	var path [maxHeight]*levelNode
	c := m.seek(price, &path)
	if c == nil || c.key != price {
		return false
	}

	for i := range c.forward {
		path[i].forward[i] = c.forward[i]
	}

	if c.forward[0] != nil {
		c.forward[0].back = c.back
	} else if c.back == m.head {
		m.last = nil
	} else {
		m.last = c.back
	}

	for m.height > 1 && m.head.forward[m.height-1] == nil {
		m.height--
	}

	m.size--
	return true
}

// Min returns the level with the lowest price, or nil when empty.
func (m *LevelMap) Min() *PriceLevel {
	if n := m.head.forward[0]; n != nil {
		return n.level
	}
	return nil
}

// Max returns the level with the highest price, or nil when empty.
func (m *LevelMap) Max() *PriceLevel {
	if m.last != nil {
		return m.last.level
	}
	return nil
}

// Ascend visits levels in ascending price order until fn returns false.
func (m *LevelMap) Ascend(fn func(*PriceLevel) bool) {
	for n := m.head.forward[0]; n != nil; n = n.forward[0] {
		if !fn(n.level) {
			return
		}
	}
}

// Descend visits levels in descending price order until fn returns false.
func (m *LevelMap) Descend(fn func(*PriceLevel) bool) {
	for n := m.last; n != nil && n != m.head; n = n.back {
		if !fn(n.level) {
			return
		}
	}
}
