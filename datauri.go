package batchgen

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const pngDataURIPrefix = "data:image/png;base64,"

// EncodePNGDataURI wraps raw image bytes in a PNG-tagged data URI.
func EncodePNGDataURI(data []byte) string {
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI extracts the raw bytes and MIME type from a base64 data URI.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}
	meta, b64, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI: missing payload")
	}
	mimeType, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return nil, "", fmt.Errorf("unsupported data URI encoding: %q", meta)
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, mimeType, nil
}
