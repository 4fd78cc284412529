// Package codec converts between address text and 20-byte address values.
package codec

import (
	"github.com/abcfe/ethutils/common/crypto"
	"github.com/abcfe/ethutils/common/logger"
	"github.com/abcfe/ethutils/common/utils"
	prt "github.com/abcfe/ethutils/protocol"
)

// Options 파싱 정책
type Options struct {
	// Tolerant parses the input as a base-10 integer and keeps its low 160 bits.
	Tolerant bool
	// VerifyChecksum rejects mixed-case input whose casing is not the EIP-55 checksum.
	// Uniform lower or upper case input is always accepted.
	VerifyChecksum bool
}

// Parse strict or tolerant, case pattern is not checked
func Parse(input string, tolerant bool) (prt.Address, error) {
	return ParseWithOptions(input, Options{Tolerant: tolerant})
}

func ParseWithOptions(input string, opts Options) (prt.Address, error) {
	if opts.Tolerant {
		return parseInteger(input)
	}
	return parseHex(input, opts.VerifyChecksum)
}

func parseHex(input string, verify bool) (prt.Address, error) {
	addr, err := utils.StringToAddress(input)
	if err != nil {
		logger.Debug("strict parse failed: ", input, " ", err)
		return prt.Address{}, &ParseError{Kind: InvalidAddressSyntax, Input: input, Err: err}
	}

	digits := utils.TrimHexPrefix(input)
	if verify && crypto.IsMixedCase(digits) && !crypto.VerifyChecksum(addr, digits) {
		logger.Debug("checksum mismatch: ", input)
		return prt.Address{}, &ParseError{Kind: ChecksumMismatch, Input: input, Err: ErrChecksumMismatch}
	}
	return addr, nil
}

func parseInteger(input string) (prt.Address, error) {
	word, err := utils.DecimalToWord256(input)
	if err != nil {
		logger.Debug("tolerant parse failed: ", input, " ", err)
		return prt.Address{}, &ParseError{Kind: InvalidInteger, Input: input, Err: err}
	}
	return utils.Word256ToAddress(word), nil
}

// Render never fails; unknown formats fall back to checksum
func Render(addr prt.Address, format prt.AddressFormat) string {
	switch format {
	case prt.FormatPlain:
		return crypto.AddressToPlainString(addr)
	default:
		return crypto.AddressToChecksumString(addr)
	}
}

// Convert parses input and renders it in one step
func Convert(input string, format prt.AddressFormat, opts Options) (string, error) {
	addr, err := ParseWithOptions(input, opts)
	if err != nil {
		return "", err
	}
	out := Render(addr, format)
	logger.Debug("converted ", input, " -> ", out, " (", format, ")")
	return out, nil
}
