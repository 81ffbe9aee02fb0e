package classify

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pclscope/pcl-go/pkg/seq"
)

// ReportOptions controls which rows ReportUsage returns.
type ReportOptions struct {
	// UsedOnly omits entries that were never used.
	UsedOnly bool

	// HideUnusedObsolete omits obsolete entries that were never used.
	HideUnusedObsolete bool
}

// UsageRow is one line of a usage report.
type UsageRow struct {
	Key         string   `json:"key" yaml:"key"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Obsolete    bool     `json:"obsolete,omitempty" yaml:"obsolete,omitempty"`
	Parent      uint64   `json:"parent" yaml:"parent"`
	Child       uint64   `json:"child" yaml:"child"`
	Total       uint64   `json:"total" yaml:"total"`
	Levels      []uint64 `json:"levels,omitempty" yaml:"levels,omitempty"`
}

func newUsageRow(e seq.Entry, u Usage) UsageRow {
	return UsageRow{
		Key:         e.Key.String(),
		Label:       e.Label(),
		Description: e.Description.String(),
		Category:    e.Category.String(),
		Obsolete:    e.Obsolete(),
		Parent:      u.Parent,
		Child:       u.Child,
		Total:       u.Total,
		Levels:      u.Levels,
	}
}

// ReportUsage returns the usage of every entry in registry order. The
// Unknown Entry's row comes first, and only if it was used. The
// statistics are not modified.
func (c *Classifier) ReportUsage(opts ReportOptions) []UsageRow {
	var rows []UsageRow

	unknown := c.reg.Unknown()
	if u := c.stats.Usage(unknown.Key); u.Total > 0 {
		rows = append(rows, newUsageRow(unknown, u))
	}

	c.reg.Each(func(e seq.Entry) bool {
		u := c.stats.Usage(e.Key)
		if u.Total == 0 {
			if opts.UsedOnly {
				return true
			}
			if opts.HideUnusedObsolete && e.Obsolete() {
				return true
			}
		}
		rows = append(rows, newUsageRow(e, u))
		return true
	})
	return rows
}

// WriteReport writes rows as an aligned table. Counts are formatted for
// the given language, e.g. with thousands separators.
func WriteReport(w io.Writer, rows []UsageRow, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "PARENT\tCHILD\tTOTAL\tSEQUENCE\tDESCRIPTION"); err != nil {
		return err
	}
	var parent, child, total uint64
	for _, r := range rows {
		_, err := p.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n", r.Parent, r.Child, r.Total, r.Label, r.Description)
		if err != nil {
			return err
		}
		parent += r.Parent
		child += r.Child
		total += r.Total
	}
	if _, err := p.Fprintf(tw, "%d\t%d\t%d\t%s\t\n", parent, child, total, "TOTAL"); err != nil {
		return err
	}
	return tw.Flush()
}
