package content

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// splitFrontmatter separates the `---` delimited header from the body.
// Documents without a header are returned whole as body.
func splitFrontmatter(content []byte) (header []byte, body []byte, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], nil
	}

	closeSeq := []byte(nl + "---" + nl)
	if idx := bytes.Index(rest, closeSeq); idx >= 0 {
		return rest[:idx+len(nl)], rest[idx+len(closeSeq):], nil
	}

	// closing delimiter on the last line without a trailing newline
	closeEOF := []byte(nl + "---")
	if bytes.HasSuffix(rest, closeEOF) {
		return rest[:len(rest)-len(closeEOF)+len(nl)], []byte{}, nil
	}

	return nil, nil, ErrMissingClosingDelimiter
}

func parseFrontmatter(content []byte) (Frontmatter, []byte, error) {
	header, body, err := splitFrontmatter(content)
	if err != nil {
		return Frontmatter{}, nil, err
	}

	var fm Frontmatter
	if len(bytes.TrimSpace(header)) == 0 {
		return fm, body, nil
	}
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return Frontmatter{}, nil, err
	}
	return fm, body, nil
}
