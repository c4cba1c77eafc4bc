package weather

import "bytes"

// SplitLinesScalar splits data into line spans on '\n' with a plain byte
// loop. The spans alias data. Empty spans between consecutive newlines
// are dropped; a non-empty final line without a trailing newline is kept.
func SplitLinesScalar(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if start < i {
				lines = append(lines, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

// SplitLines is the fast variant of SplitLinesScalar, finding newlines
// with bytes.IndexByte. Output is identical.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for start < len(data) {
		i := bytes.IndexByte(data[start:], '\n')
		if i < 0 {
			lines = append(lines, data[start:])
			break
		}
		if i > 0 {
			lines = append(lines, data[start:start+i])
		}
		start += i + 1
	}
	return lines
}
