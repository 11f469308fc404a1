// pool.go - byte-buffer reuse for Message.ToBytes, which takes one buffer
// per call to accumulate the encoded data fields.
package iso8583

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 4096)
		return &buf
	},
}

// getBuffer returns a zero-length buffer for accumulating field bytes
// during ToBytes. Callers must return it with putBuffer once its
// contents have been copied out.
func getBuffer() []byte {
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) <= 8192 { // don't pool oversized buffers
		b := buf[:0]
		bufferPool.Put(&b)
	}
}
