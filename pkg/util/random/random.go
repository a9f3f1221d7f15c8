package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

// GetRandomInt generates a secure random number with the given digit count.
func GetRandomInt(length int) int {
	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min * 10

	rangeSize := big.NewInt(max - min)
	n, err := rand.Int(rand.Reader, rangeSize)
	if err != nil {
		return int(min) // fallback
	}
	return int(n.Int64() + min)
}

// GetNowAndLenRandomString generates a timestamp-prefixed random string of
// exactly length characters, used for entity uuids.
// Format: YYMMDD + alphanumeric mix, e.g. 241230AbCdE1234567
func GetNowAndLenRandomString(length int) string {
	now := time.Now().Format("060102")
	if length <= len(now) {
		return now[:length]
	}
	result := make([]byte, length-len(now))
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[n.Int64()]
	}
	return now + string(result)
}
