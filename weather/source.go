package weather

import (
	"fmt"
	"os"
)

// ReadFileBuffered reads the whole file into an owned buffer.
func ReadFileBuffered(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
