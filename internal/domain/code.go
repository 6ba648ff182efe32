package domain

import (
	"crypto/rand"
	"math/big"
)

const (
	// CodeAlphabet leaves out 0/O and 1/I/L so codes survive being read
	// aloud or typed from a phone screen.
	CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	CodeLength   = 6
)

// GenerateRoomCode draws each character uniformly from CodeAlphabet.
// It does not check the result against live rooms; the registry does.
func GenerateRoomCode() RoomCode {
	buf := make([]byte, CodeLength)
	for i := range buf {
		buf[i] = CodeAlphabet[randomIndex(len(CodeAlphabet))]
	}
	return RoomCode(buf)
}

// randomIndex returns a cryptographically secure random index in [0, max).
func randomIndex(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}
