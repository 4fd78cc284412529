package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	prt "github.com/abcfe/ethutils/protocol"
	"github.com/holiman/uint256"
)

var (
	ErrInvalidLength    = errors.New("invalid string length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyInteger     = errors.New("cannot parse integer from empty string")
	ErrInvalidDigit     = errors.New("invalid digit found in string")
	ErrIntegerOverflow  = errors.New("number too large to fit in 256 bits")
)

// TrimHexPrefix 0x 접두사 제거
func TrimHexPrefix(str string) string {
	return strings.TrimPrefix(str, prt.HexPrefix)
}

// AddressToString Address 타입을 16진수 문자열로 변환 (접두사 없음, 소문자)
func AddressToString(address prt.Address) string {
	return hex.EncodeToString(address[:])
}

// StringToAddress 16진수 문자열을 Address 타입으로 변환
// 0x 접두사는 선택, 대소문자 구분 없음
func StringToAddress(str string) (prt.Address, error) {
	digits := TrimHexPrefix(str)

	// 주소 길이 검증
	if len(digits) != prt.AddressHexLen {
		return prt.Address{}, ErrInvalidLength
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return prt.Address{}, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, digits[i], i)
		}
	}

	var address prt.Address
	if _, err := hex.Decode(address[:], []byte(digits)); err != nil {
		return prt.Address{}, err
	}
	return address, nil
}

// DecimalToWord256 10진수 문자열을 256비트 big-endian 값으로 변환
func DecimalToWord256(str string) (prt.Word256, error) {
	if str == "" {
		return prt.Word256{}, ErrEmptyInteger
	}
	// uint256 accepts a leading '+', plain digits only here
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return prt.Word256{}, ErrInvalidDigit
		}
	}

	value, err := uint256.FromDecimal(str)
	if err != nil {
		if errors.Is(err, uint256.ErrBig256Range) {
			return prt.Word256{}, ErrIntegerOverflow
		}
		return prt.Word256{}, err
	}
	return prt.Word256(value.Bytes32()), nil
}

// Word256ToAddress 하위 160비트(마지막 20바이트)를 주소로 사용, 상위 12바이트는 버림
func Word256ToAddress(word prt.Word256) prt.Address {
	var address prt.Address
	copy(address[:], word[prt.Word256AddrSkip:])
	return address
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
