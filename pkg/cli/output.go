package cli

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// OutputFormat represents the output format for lint reports.
type OutputFormat string

const (
	// FormatTerm is plain text output, one entry per line.
	FormatTerm OutputFormat = "term"
	// FormatColorTerm is text output colored by severity (default).
	FormatColorTerm OutputFormat = "cterm"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatXML is XML output.
	FormatXML OutputFormat = "xml"
	// FormatCSV is CSV output.
	FormatCSV OutputFormat = "csv"
)

// Formats lists every supported output format.
func Formats() []OutputFormat {
	return []OutputFormat{FormatTerm, FormatColorTerm, FormatJSON, FormatXML, FormatCSV}
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", NewConfigError("format", fmt.Sprintf("unknown output format %q", s))
}

// Renderer writes lint reports.
type Renderer interface {
	Render(w io.Writer, reports []*report.Report) error
}

// RenderOptions configures NewRenderer.
type RenderOptions struct {
	// Levels selects the severities written.
	Levels report.Levels
	// Profile is the color profile for cterm output. The zero value is
	// termenv.TrueColor; use termenv.Ascii to disable color.
	Profile termenv.Profile
}

// DefaultRenderOptions shows every severity with ANSI colors.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Levels: report.AllLevels(), Profile: termenv.ANSI}
}

// NewRenderer creates a renderer for the specified format.
func NewRenderer(format OutputFormat, opts RenderOptions) (Renderer, error) {
	var r Renderer
	switch format {
	case FormatTerm:
		r = &TermRenderer{}
	case FormatColorTerm:
		r = &TermRenderer{Color: true, Profile: opts.Profile}
	case FormatJSON:
		r = &JSONRenderer{Indent: true}
	case FormatXML:
		r = &XMLRenderer{}
	case FormatCSV:
		r = &CSVRenderer{Header: true}
	default:
		return nil, NewConfigError("format", fmt.Sprintf("unknown output format %q", format))
	}
	return &levelFilter{levels: opts.Levels, next: r}, nil
}

// levelFilter drops entries of hidden severities before rendering.
type levelFilter struct {
	levels report.Levels
	next   Renderer
}

func (f *levelFilter) Render(w io.Writer, reports []*report.Report) error {
	filtered := make([]*report.Report, len(reports))
	for i, r := range reports {
		filtered[i] = r.Filter(f.levels)
	}
	return f.next.Render(w, filtered)
}

// TermRenderer writes "E-1: message in path" lines. With Color set, the
// entry is colored by severity and the path is grey. When several reports
// are rendered each is preceded by its source.
type TermRenderer struct {
	Color   bool
	Profile termenv.Profile
}

var levelColors = map[report.Level]termenv.Color{
	report.Error:       termenv.ANSIRed,
	report.Warning:     termenv.ANSIYellow,
	report.Information: termenv.ANSIBrightBlue,
}

// Render writes reports to w.
func (r *TermRenderer) Render(w io.Writer, reports []*report.Report) error {
	out := termenv.NewOutput(w, termenv.WithProfile(r.Profile))
	for _, rep := range reports {
		if len(reports) > 1 {
			if _, err := fmt.Fprintf(w, "%s:\n", rep.Source); err != nil {
				return err
			}
		}
		for _, e := range rep.Entries {
			line := e.String()
			if r.Color {
				head := out.String(fmt.Sprintf("%s-%d: %s", e.Level, e.Number, e.Message)).
					Foreground(levelColors[e.Level]).String()
				line = head + " " + out.String(e.Path).Foreground(termenv.ANSIWhite).String()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSONRenderer writes a single report as an object and several as an array.
type JSONRenderer struct {
	Indent bool
}

// Render writes reports to w.
func (r *JSONRenderer) Render(w io.Writer, reports []*report.Report) error {
	encoder := json.NewEncoder(w)
	if r.Indent {
		encoder.SetIndent("", "  ")
	}
	if len(reports) == 1 {
		return encoder.Encode(reports[0])
	}
	return encoder.Encode(reports)
}

type xmlEntry struct {
	XMLName xml.Name `xml:"entry"`
	Level   string   `xml:"level,attr"`
	Number  int      `xml:"number,attr"`
	Message string   `xml:"message,attr"`
	Path    string   `xml:"path,attr"`
}

type xmlReport struct {
	XMLName xml.Name   `xml:"report"`
	ID      string     `xml:"id,attr,omitempty"`
	Source  string     `xml:"source,attr,omitempty"`
	Variant string     `xml:"variant,attr,omitempty"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlReports struct {
	XMLName xml.Name    `xml:"reports"`
	Reports []xmlReport `xml:"report"`
}

// XMLRenderer writes a <report> element, or a <reports> element when
// several reports are rendered.
type XMLRenderer struct{}

// Render writes reports to w.
func (r *XMLRenderer) Render(w io.Writer, reports []*report.Report) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	var v any
	if len(reports) == 1 {
		v = toXMLReport(reports[0])
	} else {
		all := xmlReports{Reports: make([]xmlReport, len(reports))}
		for i, rep := range reports {
			all.Reports[i] = toXMLReport(rep)
		}
		v = all
	}
	if err := encoder.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func toXMLReport(rep *report.Report) xmlReport {
	out := xmlReport{
		ID:      rep.ID,
		Source:  rep.Source,
		Variant: rep.Variant,
		Entries: make([]xmlEntry, len(rep.Entries)),
	}
	for i, e := range rep.Entries {
		out.Entries[i] = xmlEntry{
			Level:   string(e.Level),
			Number:  e.Number,
			Message: e.Message,
			Path:    e.Path,
		}
	}
	return out
}

// CSVHeader is the column header written by CSVRenderer.
var CSVHeader = []string{"level", "number", "message", "path", "source"}

// CSVRenderer writes one row per entry.
type CSVRenderer struct {
	Header bool
}

// Render writes reports to w.
func (r *CSVRenderer) Render(w io.Writer, reports []*report.Report) error {
	csvWriter := csv.NewWriter(w)

	if r.Header {
		if err := csvWriter.Write(CSVHeader); err != nil {
			return err
		}
	}
	for _, rep := range reports {
		for _, e := range rep.Entries {
			row := []string{string(e.Level), strconv.Itoa(e.Number), e.Message, e.Path, rep.Source}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
