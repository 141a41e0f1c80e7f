package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadoon/hf3lint/pkg/lint/report"
)

func sampleReport(source string) *report.Report {
	rep := report.New()
	rep.Source = source
	rep.Variant = "bc"
	rep.Add(report.Entry{Level: report.Error, Number: 1, Message: "Field does not exist", Path: "Param.BCData.X.fDPoints"})
	rep.Add(report.Entry{Level: report.Warning, Number: 2, Message: "mu, \"too\" big", Path: "Param.ElasticityModel.mu"})
	rep.Add(report.Entry{Level: report.Information, Number: 3, Message: "note", Path: "Param"})
	return rep
}

func render(t *testing.T, format OutputFormat, opts RenderOptions, reports ...*report.Report) string {
	t.Helper()
	r, err := NewRenderer(format, opts)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, reports))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("html")
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))

	_, err = NewRenderer("html", DefaultRenderOptions())
	assert.Error(t, err)
}

func TestTermRenderer(t *testing.T) {
	out := render(t, FormatTerm, DefaultRenderOptions(), sampleReport("a.xml"))

	assert.Equal(t,
		"E-1: Field does not exist in Param.BCData.X.fDPoints\n"+
			"W-2: mu, \"too\" big in Param.ElasticityModel.mu\n"+
			"I-3: note in Param\n",
		out)
}

func TestTermRendererMultipleReports(t *testing.T) {
	out := render(t, FormatTerm, DefaultRenderOptions(), sampleReport("a.xml"), report.New())
	assert.True(t, strings.HasPrefix(out, "a.xml:\nE-1:"))
	assert.True(t, strings.HasSuffix(out, "I-3: note in Param\n:\n"))
}

func TestColorTermRenderer(t *testing.T) {
	out := render(t, FormatColorTerm, DefaultRenderOptions(), sampleReport("a.xml"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "\x1b[31mE-1: Field does not exist\x1b[0m \x1b[37mParam.BCData.X.fDPoints\x1b[0m", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "\x1b[33mW-2:"))
	assert.True(t, strings.HasPrefix(lines[2], "\x1b[94mI-3:"))
}

func TestColorTermRendererAscii(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Profile = termenv.Ascii

	out := render(t, FormatColorTerm, opts, sampleReport("a.xml"))
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "E-1: Field does not exist Param.BCData.X.fDPoints\n")
}

func TestLevelFiltering(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Levels = report.Levels{Error: true}

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			out := render(t, f, opts, sampleReport("a.xml"))
			assert.Contains(t, out, "Field does not exist")
			assert.NotContains(t, out, "note")
			assert.NotContains(t, out, "Param.ElasticityModel.mu")
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	rep := sampleReport("a.xml")
	out := render(t, FormatJSON, DefaultRenderOptions(), rep)

	var decoded report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, rep.ID, decoded.ID)
	assert.Equal(t, "a.xml", decoded.Source)
	assert.Equal(t, rep.Entries, decoded.Entries)

	out = render(t, FormatJSON, DefaultRenderOptions(), rep, sampleReport("b.xml"))
	var many []report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &many))
	require.Len(t, many, 2)
	assert.Equal(t, "b.xml", many[1].Source)
}

func TestXMLRenderer(t *testing.T) {
	out := render(t, FormatXML, DefaultRenderOptions(), sampleReport("a.xml"))
	assert.True(t, strings.HasPrefix(out, xml.Header))

	var decoded xmlReport
	require.NoError(t, xml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a.xml", decoded.Source)
	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, xmlEntry{
		XMLName: xml.Name{Local: "entry"},
		Level:   "W",
		Number:  2,
		Message: "mu, \"too\" big",
		Path:    "Param.ElasticityModel.mu",
	}, decoded.Entries[1])

	out = render(t, FormatXML, DefaultRenderOptions(), sampleReport("a.xml"), sampleReport("b.xml"))
	var many xmlReports
	require.NoError(t, xml.Unmarshal([]byte(out), &many))
	assert.Len(t, many.Reports, 2)
}

func TestCSVRenderer(t *testing.T) {
	out := render(t, FormatCSV, DefaultRenderOptions(), sampleReport("a.xml"), sampleReport("b.xml"))

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{"W", "2", "mu, \"too\" big", "Param.ElasticityModel.mu", "a.xml"}, records[2])
	assert.Equal(t, "b.xml", records[6][4])
}

func TestCSVRendererWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVRenderer{}).Render(&buf, []*report.Report{sampleReport("a.xml")}))
	assert.True(t, strings.HasPrefix(buf.String(), "E,1,"))
}
