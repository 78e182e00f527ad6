package redemption

import (
	"crypto/rand"
	"errors"
	"strings"
)

// Alphabet omits 0, 1, I, L and O so printed receipts survive manual transcription.
const Alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const (
	Prefix      = "COLOR"
	bodyLength  = 8
	randomChars = bodyLength - 1
	// largest multiple of len(Alphabet) that fits in a byte; bytes above it are rejected to keep the draw uniform
	rejectionCeiling = 256 - 256%len(Alphabet)
)

var (
	ErrInvalidFormat   = errors.New("invalid redemption code format")
	ErrInvalidChecksum = errors.New("invalid redemption code checksum")
)

// Code is a redemption code in canonical COLOR-XXXX-XXXX form.
type Code string

func (c Code) String() string {
	return string(c)
}

// Generate draws seven random symbols and appends the weighted checksum symbol.
func Generate() (Code, error) {
	body := make([]byte, 0, bodyLength)
	buf := make([]byte, 16)
	for len(body) < randomChars {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= rejectionCeiling {
				continue
			}
			body = append(body, Alphabet[int(b)%len(Alphabet)])
			if len(body) == randomChars {
				break
			}
		}
	}

	sum, ok := checksum(string(body))
	if !ok {
		return "", ErrInvalidFormat
	}
	body = append(body, sum)
	return render(string(body)), nil
}

// Validate reports whether input is a well-formed code with a correct checksum.
// Accepted spellings: COLOR-XXXX-XXXX, COLORXXXXXXXX, XXXX-XXXX and XXXXXXXX, any case.
func Validate(input string) bool {
	body := normalize(input)
	if len(body) != bodyLength {
		return false
	}
	want, ok := checksum(body[:randomChars])
	if !ok {
		return false
	}
	return strings.IndexByte(Alphabet, body[randomChars]) >= 0 && body[randomChars] == want
}

// Format re-renders input in canonical form. Callers are expected to Validate first;
// only the length is checked here.
func Format(input string) (Code, error) {
	body := normalize(input)
	if len(body) != bodyLength {
		return "", ErrInvalidFormat
	}
	return render(body), nil
}

// Parse validates and formats in one step.
func Parse(input string) (Code, error) {
	body := normalize(input)
	if len(body) != bodyLength {
		return "", ErrInvalidFormat
	}
	for i := 0; i < len(body); i++ {
		if strings.IndexByte(Alphabet, body[i]) < 0 {
			return "", ErrInvalidFormat
		}
	}
	if !Validate(body) {
		return "", ErrInvalidChecksum
	}
	return render(body), nil
}

func normalize(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if strings.HasPrefix(s, Prefix) {
		s = strings.TrimPrefix(s[len(Prefix):], "-")
	}
	return strings.ReplaceAll(s, "-", "")
}

func render(body string) Code {
	return Code(Prefix + "-" + body[:4] + "-" + body[4:])
}

// checksum weights each symbol's alphabet index by its 1-based position, modulo 31.
func checksum(s string) (byte, bool) {
	sum := 0
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(Alphabet, s[i])
		if idx < 0 {
			return 0, false
		}
		sum += idx * (i + 1)
	}
	return Alphabet[sum%len(Alphabet)], true
}
