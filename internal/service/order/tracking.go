package order

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	trackingPrefix   = "CN"
	trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	trackingSuffix   = 4
	trackingAttempts = 3
)

// NewTrackingNumber CN + время в base36 + случайный хвост.
func NewTrackingNumber(now time.Time) string {
	var b strings.Builder
	b.WriteString(trackingPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))

	limit := big.NewInt(int64(len(trackingAlphabet)))
	for range trackingSuffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			n = big.NewInt(now.UnixNano() % limit.Int64())
		}
		b.WriteByte(trackingAlphabet[n.Int64()])
	}
	return b.String()
}
