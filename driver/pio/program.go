//go:build rp2040

package pio

import (
	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// The state machine runs at ten cycles per microsecond, forty per bit slot.
// Receive is edge-synchronised: each data bit starts on a falling edge, the
// line is sampled two microseconds later, and a queue word of 0 or 1 is
// autopushed. Once the line has stayed high for thirty-two polls the idle
// marker 2 is pushed and the machine parks on the next falling edge.
//
// Transmit is entered by the host jumping the restarted machine to
// joybusTxEntry. Each queue word carries a byte in its top eight bits and a
// frame-end flag below; the flag bit steers the machine into the stop pulse
// and back to receive.
//
//	.wrap_target
//	rx_entry:              ; receive, line released
//	     0: set  pindirs, 0
//	bit: 1: wait 0 pin 0 [19]   ; falling edge, then to mid-slot
//	     2: in   null, 1
//	     3: in   pins, 1        ; sample at 2.1us, autopush depth 2
//	     4: wait 1 pin 0        ; low phase over
//	     5: set  y, 31
//	high:6: jmp  pin, idle
//	     7: jmp  bit            ; next falling edge inside this frame
//	idle:8: jmp  y--, high      ; two cycles per poll, 6.4us total
//	     9: set  y, 2
//	    10: in   y, 2           ; push idle marker
//	    11: jmp  bit            ; park until the next frame
//	tx_entry:              ; transmit, entered via host jmp
//	    12: set  pins, 1
//	    13: set  pindirs, 1     ; drive the turnaround level
//	    14: set  y, 0
//	out:15: set  pins, 1
//	    16: pull ifempty block
//	    17: out  x, 1
//	    18: jmp  !osre, data
//	    19: jmp  x != y, stop   ; ninth bit set: this byte ends the frame
//	    20: pull ifempty block  ; next byte, keep slot at forty cycles
//	    21: out  x, 1
//	    22: jmp  cont
//	data:23: mov  y, y [3]
//	cont:24: mov  y, y [1]
//	    25: set  pins, 0 [9]    ; one microsecond low
//	    26: mov  pins, x [18]   ; data level for the middle of the slot
//	    27: jmp  out
//	stop:28: mov  y, y [4]
//	    29: set  pins, 0 [9]
//	    30: set  pins, 1 [18]   ; two microseconds driven high
//	    31: jmp  rx_entry       ; release and listen again
//	.wrap
const (
	joybusWrapTarget = 0
	joybusWrap       = 31

	joybusRxEntry = 0
	joybusTxEntry = 12
)

const joybusOrigin int8 = -1

var joybusInstructions = []uint16{
	0xe080, //  0: set  pindirs, 0
	0x3320, //  1: wait 0 pin 0 [19]
	0x4061, //  2: in   null, 1
	0x4001, //  3: in   pins, 1
	0x20a0, //  4: wait 1 pin 0
	0xe05f, //  5: set  y, 31
	0x00c8, //  6: jmp  pin, 8
	0x0001, //  7: jmp  1
	0x0086, //  8: jmp  y--, 6
	0xe042, //  9: set  y, 2
	0x4042, // 10: in   y, 2
	0x0001, // 11: jmp  1
	0xe001, // 12: set  pins, 1
	0xe081, // 13: set  pindirs, 1
	0xe040, // 14: set  y, 0
	0xe001, // 15: set  pins, 1
	0x80e0, // 16: pull ifempty block
	0x6021, // 17: out  x, 1
	0x00f7, // 18: jmp  !osre, 23
	0x00bc, // 19: jmp  x != y, 28
	0x80e0, // 20: pull ifempty block
	0x6021, // 21: out  x, 1
	0x0018, // 22: jmp  24
	0xa342, // 23: mov  y, y [3]
	0xa142, // 24: mov  y, y [1]
	0xe900, // 25: set  pins, 0 [9]
	0xb201, // 26: mov  pins, x [18]
	0x000f, // 27: jmp  15
	0xa442, // 28: mov  y, y [4]
	0xe900, // 29: set  pins, 0 [9]
	0xf201, // 30: set  pins, 1 [18]
	0x0000, // 31: jmp  0
}

func joybusProgramDefaultConfig(offset uint8) rp2pio.StateMachineConfig {
	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+joybusWrapTarget, offset+joybusWrap)
	return cfg
}
