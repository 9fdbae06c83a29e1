package tkengine

import (
	"container/list"
	"sync"
)

const defaultParseCacheSize = 256

type parseResult struct {
	seq Sequence
	err error
}

type cacheEntry struct {
	raw    string
	result parseResult
}

// parseCache memoizes parser output by raw sequence text, evicting the least
// recently used entry once full. Syntax errors are cached as well.
type parseCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List // front is most recent
}

func newParseCache(capacity int) *parseCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &parseCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *parseCache) get(raw string) (parseResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[raw]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).result, true
	}
	return parseResult{}, false
}

func (c *parseCache) put(raw string, result parseResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[raw]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).result = result
		return
	}
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).raw)
		}
	}
	c.items[raw] = c.order.PushFront(&cacheEntry{raw: raw, result: result})
}

func (c *parseCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
