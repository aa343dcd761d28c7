// File: pkg/concat/file_processing.go
package concat

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DecodeError reports file contents that are not valid UTF-8.
type DecodeError struct {
	Byte   byte // First offending byte.
	Offset int  // Byte offset of Byte within the file.
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// validateUTF8 returns a *DecodeError for the first invalid sequence in data.
func validateUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return &DecodeError{Byte: data[i], Offset: i}
		}
		i += size
	}
	return nil
}

// readSourceFile reads the whole file at path as UTF-8 text.
func readSourceFile(path string, logger *zap.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := validateUTF8(data); err != nil {
		return "", err
	}

	logger.Debug("Read file content",
		zap.String("path", path),
		zap.Int("contentSizeBytes", len(data)))
	return string(data), nil
}
