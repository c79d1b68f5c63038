package server

import "sync"

// bufferPool hands out read buffers of one fixed size.
type bufferPool struct {
	size int
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	p := &bufferPool{size: size}
	p.pool.New = func() interface{} {
		buf := make([]byte, size)
		return &buf
	}
	return p
}

func (p *bufferPool) get() []byte {
	buf := p.pool.Get().(*[]byte)
	return (*buf)[:p.size]
}

func (p *bufferPool) put(buf []byte) {
	if cap(buf) != p.size {
		// foreign size, let GC handle it
		return
	}
	buf = buf[:p.size]
	p.pool.Put(&buf)
}
