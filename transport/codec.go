package transport

// SignalCodec is the interface the engine drives the line codec through.
// driver/pio implements it on hardware, driver/loopback on the host.
type SignalCodec interface {
	// Configure claims the hardware and starts the codec in receive mode.
	Configure() error
	// ReadBit pops one receive queue word without blocking.
	ReadBit() (word uint32, ok bool)
	// BeginTransmit turns the line around: it waits out the post-command
	// guard, lets the console's stop bit clear the wire, drops anything
	// still queued in either direction and switches to transmit.
	BeginTransmit()
	// WriteWord queues one transmit word without blocking. It returns
	// protocol.ErrQueueFull when the codec cannot take the word yet.
	WriteWord(word uint32) error
	// Reset abandons the exchange: drops queued words in both directions
	// and forces receive mode.
	Reset()
}
