package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/validator"
)

// Format is an output format of the check command.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// SupportedFormats lists the accepted output formats.
func SupportedFormats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

func (f Format) IsUnknown() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// Report is the printable outcome of a check run, in form order.
type Report struct {
	Status validator.CollectionStatus `json:"status" yaml:"status"`
	Fields []FieldReport              `json:"fields" yaml:"fields"`
}

type FieldReport struct {
	Tag    string            `json:"tag" yaml:"tag"`
	Status constraint.Status `json:"status" yaml:"status"`
	Error  string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewReport orders the aggregate by the entries it was produced from.
func NewReport(entries []Entry, aggregate validator.Aggregate) Report {
	report := Report{
		Status: aggregate.Status,
		Fields: make([]FieldReport, 0, len(entries)),
	}
	for _, e := range entries {
		result := aggregate.Results[e.Value]
		report.Fields = append(report.Fields, FieldReport{
			Tag:    e.Value.Tag(),
			Status: result.Status,
			Error:  result.Error,
		})
	}
	return report
}

func (r Report) Valid() bool {
	return r.Status == validator.AllValid
}

// Write renders the report to w in the given format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TAG\tSTATUS\tERROR")
		for _, f := range r.Fields {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Tag, f.Status, f.Error)
		}
		fmt.Fprintf(tw, "\n%s\t\t\n", r.Status)
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
