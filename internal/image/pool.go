package image

import "sync"

// Pool is a thread-safe pool of int32 sample buffers.
//
// Buffers are grouped by length so a plane of a given geometry always gets
// back a buffer of exactly the size it released. Chroma reconstruction
// allocates the same few sizes for every frame of a stream, which is the
// case the pool serves.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]int32
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// length. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]int32),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of length n, reusing a pooled one if
// available. Get returns nil if n is not positive.
func (p *Pool) Get(n int) []int32 {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]int32, n)
}

// Put returns buf to the pool. Empty buffers and buffers arriving at a full
// bucket are dropped.
func (p *Pool) Put(buf []int32) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len returns the number of pooled buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a buffer from the default pool.
func GetFromDefault(n int) []int32 {
	return defaultPool.Get(n)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(buf []int32) {
	defaultPool.Put(buf)
}
