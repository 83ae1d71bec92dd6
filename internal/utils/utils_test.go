package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceipt(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		r, err := GenerateReceipt("receipt_")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(r, "receipt_"), "Should start with the prefix")
		suffix := strings.TrimPrefix(r, "receipt_")
		assert.Len(t, suffix, ReceiptSuffixLen)
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), suffix)
	})

	t.Run("Uniqueness", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			r, err := GenerateReceipt("receipt_")
			require.NoError(t, err)
			_, dup := seen[r]
			assert.False(t, dup, "receipt %s generated twice", r)
			seen[r] = struct{}{}
		}
	})

	t.Run("Empty prefix", func(t *testing.T) {
		r, err := GenerateReceipt("")
		require.NoError(t, err)
		assert.Len(t, r, ReceiptSuffixLen)
	})

	t.Run("Random source failure", func(t *testing.T) {
		r, err := generateReceipt(failingReader{}, "receipt_")
		assert.Empty(t, r)
		assert.ErrorIs(t, err, errNoEntropy)
	})
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "Invalid amount", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Invalid amount"}, body)
}

func TestWriteJSONErrorDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONErrorDetail(w, "Failed to create order", "razorpay error: timeout", http.StatusInternalServerError)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to create order", body["error"])
	assert.Equal(t, "razorpay error: timeout", body["details"])
}

var errNoEntropy = errors.New("no entropy")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errNoEntropy }
