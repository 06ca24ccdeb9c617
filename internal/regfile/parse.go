package regfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Block is one [key] section of a registry file.
type Block struct {
	Key    string  `json:"key"`
	Values []Value `json:"values"`
}

// Value is one "name"=data assignment inside a block.
type Value struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// DWORD returns the named dword value of the block.
func (b Block) DWORD(name string) (uint32, bool) {
	for _, v := range b.Values {
		if v.Name != name || v.Type != "dword" {
			continue
		}
		n, err := strconv.ParseUint(v.Data, 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(n), true
	}
	return 0, false
}

// Decode converts raw file bytes to text. A UTF-16 byte order mark selects
// UTF-16; anything else is read as UTF-8.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode registry file: %w", err)
	}
	return string(out), nil
}

// ReadFile decodes and parses the registry file at path.
func ReadFile(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse splits registry file text into blocks. Only the subset of the
// format that nomoject writes, plain "name"=type:data lines, is understood;
// comments and blank lines are skipped.
func Parse(text string) ([]Block, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Header {
		return nil, fmt.Errorf("%w: missing %q header", ErrMalformed, Header)
	}

	blocks := []Block{}
	var cur *Block
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "["):
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("%w: line %d: unterminated key", ErrMalformed, lineNo)
			}
			blocks = append(blocks, Block{Key: line[1 : len(line)-1]})
			cur = &blocks[len(blocks)-1]
		default:
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: value outside of a key", ErrMalformed, lineNo)
			}
			v, err := parseValue(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			cur.Values = append(cur.Values, v)
		}
	}
	return blocks, nil
}

func parseValue(line string) (Value, error) {
	name, data, ok := strings.Cut(line, "=")
	if !ok {
		return Value{}, fmt.Errorf("expected name=data, got %q", line)
	}
	unquoted, err := strconv.Unquote(name)
	if err != nil {
		return Value{}, fmt.Errorf("value name %s is not quoted", name)
	}
	v := Value{Name: unquoted}
	if typ, raw, ok := strings.Cut(data, ":"); ok && !strings.HasPrefix(data, `"`) {
		v.Type, v.Data = typ, raw
	} else {
		v.Type, v.Data = "sz", strings.Trim(data, `"`)
	}
	return v, nil
}
