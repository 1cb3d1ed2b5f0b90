// Package timing logs startup checkpoints when SIGNDECK_DEBUG_TIMING=1.
package timing

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	enabled             = os.Getenv("SIGNDECK_DEBUG_TIMING") == "1"
	out       io.Writer = os.Stderr
	startTime           = time.Now()
	lastTime            = startTime
)

// Log writes a checkpoint with the time since the previous one and since
// process start.
func Log(label string) {
	if !enabled {
		return
	}
	now := time.Now()
	fmt.Fprintf(out, "[TIMING] %s: +%dms (total: %dms)\n", label, now.Sub(lastTime).Milliseconds(), now.Sub(startTime).Milliseconds())
	lastTime = now
}
