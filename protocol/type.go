package protocol

import "strings"

type Address [20]byte
type Word256 [32]byte // big-endian

// AddressFormat 주소 출력 형식
type AddressFormat int

const (
	FormatChecksum AddressFormat = iota // 0x + EIP-55 mixed case
	FormatPlain                         // 0x + lowercase
)

var formatNames = map[AddressFormat]string{
	FormatChecksum: "checksum",
	FormatPlain:    "plain",
}

func (f AddressFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseAddressFormat 문자열을 AddressFormat으로 변환 (대소문자 무시)
func ParseAddressFormat(s string) (AddressFormat, bool) {
	for f, name := range formatNames {
		if strings.EqualFold(name, s) {
			return f, true
		}
	}
	return FormatChecksum, false
}
