package utils

import (
	"math/big"
	"strings"
	"testing"

	prt "github.com/abcfe/ethutils/protocol"
	"github.com/stretchr/testify/require"
)

func TestStringToAddress(t *testing.T) {
	want := prt.Address{0x5a, 0xae, 0xb6, 0x05, 0x3f, 0x3e, 0x94, 0xc9, 0xb9, 0xa0,
		0x9f, 0x33, 0x66, 0x94, 0x35, 0xe7, 0xef, 0x1b, 0xea, 0xed}

	for _, in := range []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
		"0x5aAeb6053f3e94c9b9a09f33669435E7Ef1BeAed", // wrong checksum casing is still valid hex
	} {
		addr, err := StringToAddress(in)
		require.NoError(t, err, in)
		require.Equal(t, want, addr, in)
		require.Equal(t, "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", AddressToString(addr))
	}
}

func TestStringToAddressErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
		msg string
	}{
		{"", ErrInvalidLength, "invalid string length"},
		{"zz", ErrInvalidLength, "invalid string length"},
		{"0x", ErrInvalidLength, "invalid string length"},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea", ErrInvalidLength, "invalid string length"},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed00", ErrInvalidLength, "invalid string length"},
		{"0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", ErrInvalidLength, "invalid string length"},
		{"0xg aeb6053f3e94c9b9a09f33669435e7ef1beaed", ErrInvalidCharacter, `invalid character 'g' at position 0`},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaeZ", ErrInvalidCharacter, `invalid character 'Z' at position 39`},
	}
	for _, c := range cases {
		_, err := StringToAddress(c.in)
		require.ErrorIs(t, err, c.err, c.in)
		require.Equal(t, c.msg, err.Error(), c.in)
	}
}

func TestDecimalToWord256(t *testing.T) {
	word, err := DecimalToWord256("1390849295786071768276380950238675083608645509734")
	require.NoError(t, err)
	addr := Word256ToAddress(word)
	require.Equal(t, "f39fd6e51aad88f6f4ce6ab8827279cfffb92266", AddressToString(addr))
	for _, b := range word[:prt.Word256AddrSkip] {
		require.Zero(t, b)
	}

	word, err = DecimalToWord256("0")
	require.NoError(t, err)
	require.Equal(t, prt.Word256{}, word)

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	word, err = DecimalToWord256(max.String())
	require.NoError(t, err)
	for _, b := range word {
		require.Equal(t, byte(0xff), b)
	}
}

func TestDecimalToWord256Errors(t *testing.T) {
	overflow := new(big.Int).Lsh(big.NewInt(1), 256).String()
	cases := []struct {
		in  string
		err error
	}{
		{"", ErrEmptyInteger},
		{"not-a-number", ErrInvalidDigit},
		{"-1", ErrInvalidDigit},
		{"+1", ErrInvalidDigit},
		{"12 34", ErrInvalidDigit},
		{"0x10", ErrInvalidDigit},
		{overflow, ErrIntegerOverflow},
		{overflow + "0", ErrIntegerOverflow},
		{strings.Repeat("9", 100), ErrIntegerOverflow},
	}
	for _, c := range cases {
		_, err := DecimalToWord256(c.in)
		require.ErrorIs(t, err, c.err, c.in)
	}
}

func TestWord256ToAddressTruncates(t *testing.T) {
	var word prt.Word256
	for i := range word {
		word[i] = byte(i)
	}
	addr := Word256ToAddress(word)
	require.Equal(t, byte(12), addr[0])
	require.Equal(t, byte(31), addr[19])
}
