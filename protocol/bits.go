package protocol

import "time"

// Bit is one line symbol. The data values match the receive queue words.
type Bit uint8

const (
	BitZero Bit = 0
	BitOne  Bit = 1
	BitStop Bit = 2
)

// Pulse is one low/high pair on the line. For BitStop the high phase covers
// only the driven portion; after it the line floats high.
type Pulse struct {
	Low  time.Duration
	High time.Duration
}

// Pulse returns the nominal waveform for b.
func (b Bit) Pulse() Pulse {
	switch b {
	case BitZero:
		return Pulse{Low: ZeroLow, High: BitPeriod - ZeroLow}
	case BitOne:
		return Pulse{Low: OneLow, High: BitPeriod - OneLow}
	default:
		return Pulse{Low: StopLow, High: StopHigh}
	}
}

// Classify decodes one received pulse. The decision threshold is the
// mid-bit point, so a stop pulse classifies as a one; telling the stop bit
// apart from data is the assembler's job. Pulses too short or too long for
// either class are line noise.
func Classify(p Pulse) (Bit, error) {
	if p.Low < OneLow-PulseTolerance || p.Low > ZeroLow+PulseTolerance {
		return 0, ErrPulseWidth
	}
	if p.Low < SampleOffset {
		return BitOne, nil
	}
	return BitZero, nil
}
