package vector

import "go.uber.org/zap"

// LoggingAllocator logs every block acquired from and returned to the wrapped
// allocator. Acquire and release are logged at debug level, failures at warn.
type LoggingAllocator[T any] struct {
	next   Allocator[T]
	logger *zap.Logger
}

// NewLoggingAllocator wraps next. A nil next allocates from the heap and a
// nil logger discards everything.
func NewLoggingAllocator[T any](next Allocator[T], logger *zap.Logger) *LoggingAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingAllocator[T]{next: next, logger: logger}
}

// Allocate forwards to the wrapped allocator, logging failures at warn level.
func (l *LoggingAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := l.next.Allocate(n)
	if err != nil {
		l.logger.Warn("allocate failed", zap.Int("slots", n), zap.Error(err))
		return nil, err
	}
	l.logger.Debug("allocate", zap.Int("slots", n))
	return block, nil
}

// Deallocate forwards to the wrapped allocator and logs the release.
func (l *LoggingAllocator[T]) Deallocate(block []T, n int) {
	l.next.Deallocate(block, n)
	l.logger.Debug("deallocate", zap.Int("slots", n))
}
