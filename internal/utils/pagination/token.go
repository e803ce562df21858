package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeSaleToken creates an opaque cursor from the timestamp and id of the
// last ledger entry on a page. Timestamps alone are not unique (concurrent
// sessions can record sales in the same nanosecond), so the sale id breaks
// ties.
func EncodeSaleToken(soldAt time.Time, saleID string) string {
	tokenStr := fmt.Sprintf("%s|%s", soldAt.Format(timeFormat), saleID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeSaleToken parses a cursor created by EncodeSaleToken.
func DecodeSaleToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	soldAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}

	return soldAt, parts[1], nil
}
