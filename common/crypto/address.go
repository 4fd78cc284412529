package crypto

import (
	"encoding/hex"

	prt "github.com/abcfe/ethutils/protocol"
	"golang.org/x/crypto/sha3"
)

// Keccak256 pre-standard Keccak (not FIPS-202 SHA3-256)
func Keccak256(data ...[]byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	for _, b := range data {
		hash.Write(b)
	}
	return hash.Sum(nil)
}

// Add 0x prefix to address, all lowercase
func AddressToPlainString(address prt.Address) string {
	return prt.HexPrefix + hex.EncodeToString(address[:])
}

// AddressToChecksumString renders the address with EIP-55 mixed case.
// A letter digit is upper-cased when the matching nibble of
// keccak256(lowercase hex) is >= 8.
func AddressToChecksumString(address prt.Address) string {
	buf := make([]byte, len(prt.HexPrefix)+prt.AddressHexLen)
	copy(buf, prt.HexPrefix)
	digits := buf[len(prt.HexPrefix):]
	hex.Encode(digits, address[:])
	applyChecksumCase(digits, Keccak256(digits))
	return string(buf)
}

func applyChecksumCase(digits, hash []byte) {
	for i, c := range digits {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			digits[i] = c - ('a' - 'A')
		}
	}
}

// IsMixedCase reports whether hex digits contain both lower and upper case letters
func IsMixedCase(digits string) bool {
	var lower, upper bool
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case 'a' <= c && c <= 'f':
			lower = true
		case 'A' <= c && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}

// VerifyChecksum compares the case pattern of digits (no 0x prefix) against
// the checksum computed for address.
func VerifyChecksum(address prt.Address, digits string) bool {
	expected := AddressToChecksumString(address)[len(prt.HexPrefix):]
	return expected == digits
}
