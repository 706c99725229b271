// Package byteutil pools scratch buffers for record encoding.
package byteutil

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} { return &bytes.Buffer{} },
}

// GetBuffer returns an empty buffer from the pool.
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer resets p and returns it to the pool. p must not be used afterwards.
func PutBuffer(p *bytes.Buffer) {
	p.Reset()
	bufferPool.Put(p)
}

// Encode runs fn against a pooled buffer and returns a copy of what it wrote.
func Encode(fn func(buf *bytes.Buffer) error) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)
	if err := fn(buf); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
