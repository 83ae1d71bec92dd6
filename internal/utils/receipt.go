package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	receiptAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// ReceiptSuffixLen is the number of random characters after the prefix.
	ReceiptSuffixLen = 10
	// MaxReceiptLen is the gateway's limit on the receipt field.
	MaxReceiptLen = 40
)

// GenerateReceipt returns prefix followed by a random alphanumeric suffix.
// Uniqueness is probabilistic; receipts are not deduplicated.
func GenerateReceipt(prefix string) (string, error) {
	return generateReceipt(rand.Reader, prefix)
}

func generateReceipt(src io.Reader, prefix string) (string, error) {
	buf := make([]byte, ReceiptSuffixLen)
	max := big.NewInt(int64(len(receiptAlphabet)))

	for i := range buf {
		n, err := rand.Int(src, max)
		if err != nil {
			return "", fmt.Errorf("read random receipt suffix: %w", err)
		}
		buf[i] = receiptAlphabet[n.Int64()]
	}

	return prefix + string(buf), nil
}
