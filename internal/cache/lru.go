package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is a size-bounded LRU with an optional per-entry TTL.
type Cache[V any] struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	data map[string]*list.Element
}

type entry[V any] struct {
	key   string
	value V
	exp   time.Time
}

func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache[V]{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		data: make(map[string]*list.Element),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.data[key]; ok {
		e := ele.Value.(*entry[V])
		if c.ttl > 0 && time.Now().After(e.exp) {
			c.ll.Remove(ele)
			delete(c.data, key)
			var zero V
			return zero, false
		}
		c.ll.MoveToFront(ele)
		return e.value, true
	}
	var zero V
	return zero, false
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.data[key]; ok {
		c.ll.MoveToFront(ele)
		e := ele.Value.(*entry[V])
		e.value = value
		e.exp = expiry(c.ttl)
		return
	}
	el := c.ll.PushFront(&entry[V]{key: key, value: value, exp: expiry(c.ttl)})
	c.data[key] = el
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		if last != nil {
			c.ll.Remove(last)
			le := last.Value.(*entry[V])
			delete(c.data, le.key)
		}
	}
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}
