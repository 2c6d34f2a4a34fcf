// Package datauri encodes and decodes base64 data: URIs, the wire format
// the browser client uses for audio payloads in both directions.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode wraps raw bytes in a base64 data URI with the given media type.
func Encode(mediaType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// Decode extracts the raw bytes from a base64 data URI. The media type
// before the comma is not validated; browsers are inconsistent about it.
func Decode(uri string) ([]byte, error) {
	idx := strings.IndexByte(uri, ',')
	if idx < 0 {
		return nil, fmt.Errorf("data URI missing comma separator")
	}
	if !strings.HasPrefix(uri, "data:") {
		return nil, fmt.Errorf("not a data URI")
	}

	payload := uri[idx+1:]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}
	return data, nil
}
