package rtc

import "testing"

func TestClassifyAllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := Status(i)
		for _, probe := range []bool{false, true} {
			got := Classify(s, probe)
			var want Diagnosis
			switch {
			case s == 0xff:
				want = NoSignal
			case s == 0x82:
				want = FactoryState
			case s&0x80 != 0:
				want = BatteryDead
			case s&0x40 != 0:
				want = Mode24h
			case probe:
				want = Mode12h
			default:
				want = NoData
			}
			if got != want {
				t.Fatalf("Classify(%#x, %v): expected %v, got %v", i, probe, want, got)
			}
		}
	}
}

func TestNeedsProbe(t *testing.T) {
	tests := map[string]struct {
		s    Status
		need bool
	}{
		"noise":   {StatusNoise, false},
		"factory": {StatusFactory, false},
		"dead":    {0xc0, false},
		"24h":     {0x40, false},
		"12h":     {0x00, true},
		"irq":     {0x0a, true},
	}
	for name, tc := range tests {
		if got := tc.s.NeedsProbe(); got != tc.need {
			t.Errorf("%s: expected %v, got %v", name, tc.need, got)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := map[Diagnosis]Icon{
		NoSignal:     IconMissing,
		FactoryState: IconFull,
		BatteryDead:  IconDead,
		Mode24h:      IconFull,
		Mode12h:      IconFull,
		NoData:       IconError,
	}
	for d, want := range tests {
		if got := d.Icon(); got != want {
			t.Errorf("%v: expected %v, got %v", d, want, got)
		}
	}
}
