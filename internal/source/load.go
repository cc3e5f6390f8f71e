package source

import (
	"os"
	"slices"
)

// Load reads a file from disk, strips a UTF-8 BOM and normalizes CRLF
// to LF, then builds a Source. Normalization keeps byte offsets stable
// between the lexer and the renderer.
func Load(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return New(string(content)), nil
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r intact.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}
