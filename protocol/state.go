package protocol

import (
	"encoding/binary"
	"sync/atomic"
)

// Button is the set of digital inputs, wire-aligned: the low byte lands in
// report byte 0, the high byte in report byte 1.
type Button uint16

const (
	ButtonA     Button = 0x0001
	ButtonB     Button = 0x0002
	ButtonX     Button = 0x0004
	ButtonY     Button = 0x0008
	ButtonStart Button = 0x0010

	ButtonDLeft  Button = 0x0100
	ButtonDRight Button = 0x0200
	ButtonDDown  Button = 0x0400
	ButtonDUp    Button = 0x0800
	ButtonZ      Button = 0x1000
	ButtonR      Button = 0x2000
	ButtonL      Button = 0x4000
)

// State is one complete input sample.
type State struct {
	Buttons  Button
	StickX   uint8
	StickY   uint8
	CX       uint8
	CY       uint8
	TriggerL uint8
	TriggerR uint8
}

// Centred returns the neutral sample: nothing pressed, sticks centred,
// triggers released.
func Centred() State {
	return State{
		StickX: AxisCentre,
		StickY: AxisCentre,
		CX:     AxisCentre,
		CY:     AxisCentre,
	}
}

// Pressed reports whether every button in mask is held.
func (s State) Pressed(mask Button) bool { return s.Buttons&mask == mask }

// A State packs into one word: the eight report bytes, big-endian. That is
// what lets the store hand out tear-free samples from a single atomic load.
func (s State) pack() uint64 {
	r := s.Report()
	return binary.BigEndian.Uint64(r[:])
}

func unpack(w uint64) State {
	var r [ReportLen]byte
	binary.BigEndian.PutUint64(r[:], w)
	return State{
		Buttons:  Button(r[0]) | Button(r[1]&^ReportFlagBit)<<8,
		StickX:   r[2],
		StickY:   r[3],
		CX:       r[4],
		CY:       r[5],
		TriggerL: r[6],
		TriggerR: r[7],
	}
}

// Store keeps the live sample and the origin snapshot, each behind a
// single-word atomic. One writer (the input task) and one reader (the
// engine) are assumed; the reader never blocks the writer.
type Store struct {
	live   atomic.Uint64
	origin atomic.Uint64
}

// NewStore returns a store holding the neutral sample and origin.
func NewStore() *Store {
	s := &Store{}
	c := Centred()
	s.Set(c)
	s.SetOrigin(c)
	return s
}

// Set replaces the whole sample.
func (st *Store) Set(s State) { st.live.Store(s.pack()) }

// Snapshot returns the current sample. Two snapshots with no write between
// them are identical.
func (st *Store) Snapshot() State { return unpack(st.live.Load()) }

// SetOrigin replaces the calibration origin.
func (st *Store) SetOrigin(s State) { st.origin.Store(s.pack()) }

// Origin returns the calibration origin.
func (st *Store) Origin() State { return unpack(st.origin.Load()) }

// Recalibrate captures the live sample as the new origin and returns it.
func (st *Store) Recalibrate() State {
	s := st.Snapshot()
	st.SetOrigin(s)
	return s
}

// Press adds buttons to the sample.
func (st *Store) Press(b Button) {
	s := st.Snapshot()
	s.Buttons |= b
	st.Set(s)
}

// Release removes buttons from the sample.
func (st *Store) Release(b Button) {
	s := st.Snapshot()
	s.Buttons &^= b
	st.Set(s)
}

// SetButtons replaces the whole button mask.
func (st *Store) SetButtons(b Button) {
	s := st.Snapshot()
	s.Buttons = b
	st.Set(s)
}

// SetStick updates the main stick axes.
func (st *Store) SetStick(x, y uint8) {
	s := st.Snapshot()
	s.StickX, s.StickY = x, y
	st.Set(s)
}

// SetCStick updates the C-stick axes.
func (st *Store) SetCStick(x, y uint8) {
	s := st.Snapshot()
	s.CX, s.CY = x, y
	st.Set(s)
}

// SetTriggers updates the analogue trigger positions.
func (st *Store) SetTriggers(l, r uint8) {
	s := st.Snapshot()
	s.TriggerL, s.TriggerR = l, r
	st.Set(s)
}
