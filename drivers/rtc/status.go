package rtc

// Status is the raw status register.
type Status uint8

const (
	PowerFlag Status = 0x80 // power was lost, cleared by Reset
	Mode24    Status = 0x40 // 24 hour mode

	StatusNoise   Status = 0xff // bus floated high, nothing answered
	StatusFactory Status = 0x82 // state after Reset
)

func (s Status) PowerLost() bool { return s&PowerFlag != 0 }
func (s Status) Is24h() bool     { return s&Mode24 != 0 }

// NeedsProbe reports whether Classify's result depends on the clock probe.
func (s Status) NeedsProbe() bool {
	return Classify(s, false) != Classify(s, true)
}

// Diagnosis is the meaning of a status byte for the operator.
type Diagnosis uint8

const (
	NoSignal     Diagnosis = iota // bus noise, no chip or broken emulation
	FactoryState                  // chip reset, needs init
	BatteryDead                   // power flag set, chip responding
	Mode24h
	Mode12h
	NoData // status plausible but the clock delivered nothing
)

var diagnosisNames = [...]string{
	NoSignal:     "no signal",
	FactoryState: "factory state",
	BatteryDead:  "battery dead",
	Mode24h:      "24h mode",
	Mode12h:      "12h mode",
	NoData:       "no data",
}

func (d Diagnosis) String() string {
	if int(d) < len(diagnosisNames) {
		return diagnosisNames[d]
	}
	return "unknown"
}

// Classify interprets a status byte. probeHasData tells whether an independent
// date and time read returned anything; it is only consulted when the status
// byte itself is inconclusive. The order of the checks matters: a chip in
// factory state also has its power flag set.
func Classify(s Status, probeHasData bool) Diagnosis {
	switch {
	case s == StatusNoise:
		return NoSignal
	case s == StatusFactory:
		return FactoryState
	case s.PowerLost():
		return BatteryDead
	case s.Is24h():
		return Mode24h
	case !probeHasData:
		return NoData
	}
	return Mode12h
}

// Icon is the battery symbol shown next to a diagnosis.
type Icon uint8

const (
	IconNone Icon = iota
	IconFull
	IconDead
	IconMissing
	IconError
)

func (d Diagnosis) Icon() Icon {
	switch d {
	case NoSignal:
		return IconMissing
	case NoData:
		return IconError
	case BatteryDead:
		return IconDead
	}
	return IconFull
}
