// Package machine holds target specific hooks of the program, currently the
// log sink.
package machine

import (
	"bytes"

	"github.com/clktmr/agbrtc/agb"
)

// mGBA debug registers
const (
	DebugString = agb.Addr(0x04fff600)
	DebugFlags  = agb.Addr(0x04fff700)
	DebugEnable = agb.Addr(0x04fff780)
)

const (
	debugBufSize = 256
	enableToken  = 0xc0de
	presentToken = 0x1dea
	flagSend     = 0x100
)

type Level uint16

const (
	LevelFatal Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// DebugWriter writes lines to the log window of the mGBA emulator. Every
// line, or every 255 bytes of a longer line, becomes one log message. On
// hardware and other emulators the writes land in unmapped memory.
type DebugWriter struct {
	Mem   agb.Memory
	Level Level
}

// Enable opens the debug registers and reports whether an emulator answered.
func (w DebugWriter) Enable() bool {
	w.Mem.Store16(DebugEnable, enableToken)
	return w.Mem.Load16(DebugEnable) == presentToken
}

func (w DebugWriter) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line, p = p[:i], p[i+1:]
		} else {
			p = nil
		}
		for {
			n := min(len(line), debugBufSize-1)
			w.send(line[:n])
			line = line[n:]
			if len(line) == 0 {
				break
			}
		}
	}
	return written, nil
}

func (w DebugWriter) send(msg []byte) {
	var buf [debugBufSize]byte
	copy(buf[:], msg)
	for i := 0; i <= len(msg); i += 2 {
		w.Mem.Store16(DebugString+agb.Addr(i), uint16(buf[i])|uint16(buf[i+1])<<8)
	}
	w.Mem.Store16(DebugFlags, uint16(w.Level)|flagSend)
}

// DefaultWriter logs informational messages on the system bus.
var DefaultWriter = DebugWriter{Mem: agb.Bus, Level: LevelInfo}
