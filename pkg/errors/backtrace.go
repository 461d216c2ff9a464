// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// Backtrace is a call stack captured at error construction. Program
// counters are stored raw and resolved to frames only when asked for.
type Backtrace struct {
	pcs []uintptr
}

// Frame is one resolved stack entry.
type Frame struct {
	Function string
	File     string
	Line     int
}

const maxDepth = 64

// capture records the calling stack, skipping the given number of frames
// above the caller of capture itself.
func capture(skip int) Backtrace {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return Backtrace{pcs: pcs[:n]}
}

// Frames resolves the captured program counters.
func (b *Backtrace) Frames() []Frame {
	if len(b.pcs) == 0 {
		return nil
	}
	out := make([]Frame, 0, len(b.pcs))
	frames := runtime.CallersFrames(b.pcs)
	for {
		f, more := frames.Next()
		out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}

// String renders the backtrace one frame per line.
func (b *Backtrace) String() string {
	var sb strings.Builder
	for _, f := range b.Frames() {
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
