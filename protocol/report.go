package protocol

// Identity returns the probe answer: a standard controller, no expansion
// device attached.
func Identity() [IdentityLen]byte {
	return [IdentityLen]byte{0x09, 0x00, 0x03}
}

// Report renders the sample in poll wire order.
func (s State) Report() [ReportLen]byte {
	return [ReportLen]byte{
		byte(s.Buttons),
		byte(s.Buttons>>8) | ReportFlagBit,
		s.StickX,
		s.StickY,
		s.CX,
		s.CY,
		s.TriggerL,
		s.TriggerR,
	}
}

// OriginReport renders the origin answer: the sample followed by two
// reserved zero bytes.
func (s State) OriginReport() [OriginReportLen]byte {
	var out [OriginReportLen]byte
	r := s.Report()
	copy(out[:], r[:])
	return out
}
