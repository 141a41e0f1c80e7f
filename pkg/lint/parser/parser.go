package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wadoon/hf3lint/pkg/lint/document"
)

// Format identifies an input syntax.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat is returned for an unknown Format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrEmptyDocument is returned when the input holds no root element.
	ErrEmptyDocument = errors.New("empty document")
	// ErrTooDeep is returned when nesting exceeds the configured depth.
	ErrTooDeep = errors.New("document nesting too deep")
	// ErrTooLarge is returned when the input exceeds the size limit.
	ErrTooLarge = errors.New("document too large")
)

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatXML
	}
}

// Parser decodes documents with size and depth limits.
type Parser struct {
	maxFileSize int64
	maxDepth    int
}

// NewParser creates a parser with default limits.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
		maxDepth:    64,
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithMaxDepth sets the maximum element nesting depth.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// ParseFile reads and decodes the file at path.
func (p *Parser) ParseFile(path string) (document.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), p.maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := p.Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes r in the given format.
func (p *Parser) Parse(r io.Reader, format Format) (document.Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > p.maxFileSize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, p.maxFileSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	switch format {
	case FormatXML:
		return decodeXML(bytes.NewReader(data), p.maxDepth)
	case FormatYAML, FormatJSON:
		return decodeYAML(data, p.maxDepth)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

var defaultParser = NewParser()

// ParseFile decodes the file at path with default limits.
func ParseFile(path string) (document.Document, error) {
	return defaultParser.ParseFile(path)
}

// Parse decodes r with default limits.
func Parse(r io.Reader, format Format) (document.Document, error) {
	return defaultParser.Parse(r, format)
}

// DecodeXML decodes an XML stream with default limits.
func DecodeXML(r io.Reader) (document.Document, error) {
	return decodeXML(r, defaultParser.maxDepth)
}
