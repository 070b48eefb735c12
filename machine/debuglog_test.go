package machine

import (
	"strings"
	"testing"

	"github.com/clktmr/agbrtc/agb"
)

// mgba collects the messages sent through the debug registers.
type mgba struct {
	agb.RAM
	msgs []string
}

func (m *mgba) Load16(addr agb.Addr) uint16 {
	if addr == DebugEnable && m.RAM.Load16(addr) == enableToken {
		return presentToken
	}
	return m.RAM.Load16(addr)
}

func (m *mgba) Store16(addr agb.Addr, v uint16) {
	m.RAM.Store16(addr, v)
	if addr != DebugFlags {
		return
	}
	var b []byte
	for i := agb.Addr(0); i < debugBufSize; i += 2 {
		h := m.RAM.Load16(DebugString + i)
		b = append(b, byte(h), byte(h>>8))
		m.RAM.Store16(DebugString+i, 0)
	}
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	m.msgs = append(m.msgs, string(b))
}

func TestDebugWriter(t *testing.T) {
	long := strings.Repeat("x", 300)
	tests := map[string]struct {
		in   string
		want []string
	}{
		"line":      {"hello\n", []string{"hello"}},
		"odd":       {"abc", []string{"abc"}},
		"two lines": {"one\ntwo\n", []string{"one", "two"}},
		"empty":     {"\n", []string{""}},
		"long":      {long + "\n", []string{long[:255], long[255:]}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := &mgba{}
			w := DebugWriter{Mem: m, Level: LevelWarn}
			if !w.Enable() {
				t.Fatalf("expected emulator to answer")
			}
			n, err := w.Write([]byte(tc.in))
			if err != nil || n != len(tc.in) {
				t.Fatalf("expected %v, got %v (%v)", len(tc.in), n, err)
			}
			if strings.Join(m.msgs, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("expected %q, got %q", tc.want, m.msgs)
			}
			if got := m.RAM.Load16(DebugFlags); got != uint16(LevelWarn)|flagSend {
				t.Fatalf("expected %#x, got %#x", uint16(LevelWarn)|flagSend, got)
			}
		})
	}
}

func TestDebugWriterAbsent(t *testing.T) {
	w := DebugWriter{Mem: &agb.RAM{}}
	if w.Enable() {
		t.Fatalf("expected no emulator")
	}
}
