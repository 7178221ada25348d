package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator produces time-ordered UUIDv7 strings. Used by the server for
// notifications submitted without an id.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// clientIDRandomLen is the number of random base36 characters appended to
// the timestamp part of a client id.
const clientIDRandomLen = 6

// ClientIDGenerator produces short ids of the form
// base36(unix millis) + 6 random base36 characters, e.g. "m3k9z1q0x7ab2c".
// The timestamp prefix keeps ids of one user unique across sessions and the
// random suffix separates ids created in the same millisecond.
type ClientIDGenerator struct {
	now func() time.Time
}

func NewClientIDGenerator() *ClientIDGenerator {
	return &ClientIDGenerator{now: time.Now}
}

func (g *ClientIDGenerator) Generate() string {
	id := strconv.FormatInt(g.now().UnixMilli(), 36)

	buf := make([]byte, 0, clientIDRandomLen)
	for range clientIDRandomLen {
		n, err := rand.Int(rand.Reader, big.NewInt(36))
		if err != nil {
			// crypto/rand does not fail on supported platforms
			return uuid.NewString()
		}
		buf = strconv.AppendInt(buf, n.Int64(), 36)
	}

	return id + string(buf)
}
