package utils

import (
	"io"
	"sync"
)

// FlushingWriter wraps a writer and flushes it after every write so the
// inventory summary line appears immediately even on buffered outputs. The
// flush capability is resolved once at construction.
type FlushingWriter struct {
	mutex         sync.Mutex
	writer        io.Writer
	flushDelegate func() error
}

// NewFlushingWriter wraps the provided writer. Writers that are already
// wrapped are returned unchanged, and a nil writer yields nil.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if _, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return writer
	}

	flushingWriter := &FlushingWriter{writer: writer}
	if flushableWriter, implementsFlush := writer.(interface{ Flush() error }); implementsFlush {
		flushingWriter.flushDelegate = flushableWriter.Flush
	}
	return flushingWriter
}

// Write delegates to the underlying writer and flushes it when supported.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushingWriter.flushDelegate != nil {
		if flushError := flushingWriter.flushDelegate(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
