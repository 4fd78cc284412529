package protocol

const (
	// Hex address text
	HexPrefix       = "0x" // optional on input, always written on output
	AddressLength   = 20   // bytes
	AddressHexLen   = AddressLength * 2
	Word256Length   = 32
	Word256AddrSkip = Word256Length - AddressLength // high-order bytes dropped by truncation
)
