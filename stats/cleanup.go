package stats

import (
	"os"
	"sync"

	"github.com/tebeka/atexit"
)

// pending tracks the destination file currently being written so that
// an exit mid-write leaves no half-populated statistics file behind.
type pending struct {
	mu   sync.Mutex
	file string
}

func (p *pending) set(name string) {
	p.mu.Lock()
	p.file = name
	p.mu.Unlock()
}

// discard removes the file still under write, if any, and disarms.
func (p *pending) discard() {
	p.mu.Lock()
	name := p.file
	p.file = ""
	p.mu.Unlock()

	if name != "" {
		os.Remove(name)
	}
}

var (
	writing     pending
	cleanupOnce sync.Once
)

// registerCleanup arms the exit-time discard of a half-written
// destination. Registered once, on the first WriteAll.
func registerCleanup() {
	cleanupOnce.Do(func() {
		atexit.Register(writing.discard)
	})
}
