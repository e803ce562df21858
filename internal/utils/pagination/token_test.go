package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeSaleToken(t *testing.T) {
	soldAt := time.Date(2026, 3, 12, 14, 30, 45, 123456789, time.UTC)
	saleID := "9f1c2d3e-aaaa-bbbb-cccc-000000000001"

	token := EncodeSaleToken(soldAt, saleID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedSoldAt, decodedSaleID, err := DecodeSaleToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, soldAt.Equal(decodedSoldAt), "Sold-at time should match after decode")
	assert.Equal(t, saleID, decodedSaleID, "Sale id should match after decode")
}

func TestDecodeSaleTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeSaleToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // "2023-05-15T00:00:00Z" without separator
	_, _, err = DecodeSaleToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid time prefix
	invalidTimeToken := "bm90YWRhdGV8c2FsZS0x" // "notadate|sale-1"
	_, _, err = DecodeSaleToken(invalidTimeToken)
	assert.Error(t, err, "Should return an error for invalid time format")
	assert.Contains(t, err.Error(), "time parse", "Error should mention time parsing issue")
}
