package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"apidoc2blue/internal/logger"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// minConfidence is the chardet confidence above which detection beats the hints
const minConfidence = 80

// charsetAliases maps chardet names that htmlindex does not know
var charsetAliases = map[string]string{
	"gb-18030": "gb18030",
}

// ReadFile reads a file and returns its content as UTF-8.
// Valid UTF-8 is returned as is (minus a BOM); otherwise the detected
// charset is tried first when detection is confident, then each hint in order.
func ReadFile(path string, hints []string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Decode(path, raw, hints), nil
}

// Decode converts raw bytes to UTF-8. path is only used for logging.
func Decode(path string, raw []byte, hints []string) []byte {
	if utf8.Valid(raw) {
		return bytes.TrimPrefix(raw, utf8BOM)
	}

	candidates := make([]string, 0, len(hints)+1)
	detected, confidence := DetectCharset(raw)
	if detected != "" && confidence >= minConfidence {
		candidates = append(candidates, detected)
	}
	candidates = append(candidates, hints...)
	if detected != "" && confidence < minConfidence {
		candidates = append(candidates, detected)
	}

	for _, name := range candidates {
		decoded, err := decodeWith(name, raw)
		if err != nil {
			logger.LogDecodeError(path, err, "charset "+name)
			continue
		}
		logger.Debug("Decoded %s as %s", path, name)
		return decoded
	}

	logger.Warn("Could not decode %s with any known charset, using raw bytes", path)
	return raw
}

// DetectCharset returns the lower-cased best guess charset and its confidence (0-100).
// The charset is "" when detection fails.
func DetectCharset(data []byte) (string, int) {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "", 0
	}
	return strings.ToLower(result.Charset), result.Confidence
}

func decodeWith(name string, raw []byte) ([]byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := charsetAliases[name]; ok {
		name = alias
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset: %w", err)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}

	// Decoders substitute U+FFFD for invalid input rather than failing
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, fmt.Errorf("invalid %s input", name)
	}

	return decoded, nil
}
