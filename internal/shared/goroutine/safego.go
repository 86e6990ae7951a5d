// Package goroutine wraps background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"centime/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is logged with
// its stack under the given name instead of taking the process down;
// the billing scheduler runs every tick through this.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
