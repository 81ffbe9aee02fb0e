package classify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/seq"
)

func TestReportUsage_UnknownRowFirst(t *testing.T) {
	c := classify.New(registry)

	rows := c.ReportUsage(classify.ReportOptions{})
	require.NotEmpty(t, rows)
	assert.NotEqual(t, "<Esc>?", rows[0].Label, "unused unknown entry must not be reported")
	assert.Len(t, rows, registry.Len())

	c.Classify('&', 'z', 'Q', false, 0, 0)
	rows = c.ReportUsage(classify.ReportOptions{UsedOnly: true})
	require.Len(t, rows, 1)
	assert.Equal(t, "<Esc>?", rows[0].Label)
	assert.Equal(t, uint64(1), rows[0].Total)
}

func TestReportUsage_Filters(t *testing.T) {
	c := classify.New(registry)
	c.Classify('&', 'l', 'X', true, 2, 0)
	c.Classify('&', 'l', 'X', true, 2, 1)
	c.Classify('z', 0, 0, false, 0, 0) // obsolete self test

	used := c.ReportUsage(classify.ReportOptions{UsedOnly: true})
	require.Len(t, used, 2)
	for _, r := range used {
		if r.Label == "<Esc>&l#X" {
			assert.Equal(t, uint64(1), r.Parent)
			assert.Equal(t, uint64(1), r.Child)
			assert.Equal(t, uint64(2), r.Total)
			assert.Equal(t, []uint64{1, 1}, r.Levels)
		}
	}

	all := c.ReportUsage(classify.ReportOptions{})
	hidden := c.ReportUsage(classify.ReportOptions{HideUnusedObsolete: true})
	assert.Less(t, len(hidden), len(all))

	var sawUsedObsolete bool
	for _, r := range hidden {
		if r.Obsolete {
			assert.NotZero(t, r.Total, r.Label)
			sawUsedObsolete = true
		}
	}
	assert.True(t, sawUsedObsolete)
}

func TestReportUsage_RegistryOrder(t *testing.T) {
	c := classify.New(registry)
	rows := c.ReportUsage(classify.ReportOptions{})

	entries := registry.Entries()
	require.Len(t, rows, len(entries))
	for i := range rows {
		assert.Equal(t, entries[i].Key.String(), rows[i].Key)
	}
}

func TestReportUsage_DoesNotMutate(t *testing.T) {
	c := classify.New(registry)
	c.Classify('E', 0, 0, false, 0, 0)

	before := c.Stats().Total()
	c.ReportUsage(classify.ReportOptions{})
	c.ReportUsage(classify.ReportOptions{UsedOnly: true})
	assert.Equal(t, before, c.Stats().Total())
}

func TestWriteReport(t *testing.T) {
	rows := []classify.UsageRow{
		{Label: "<Esc>E", Description: "Printer Reset", Parent: 1234, Total: 1234},
		{Label: "<Esc>*rC", Description: "End Raster Graphics", Parent: 2, Child: 1, Total: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, classify.WriteReport(&buf, rows, language.English))

	out := buf.String()
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "1,237")
	assert.Contains(t, out, "Printer Reset")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "PARENT"))
}

func TestReportUsage_ExpandedValueRows(t *testing.T) {
	c := classify.New(registry)
	c.Classify('&', 'a', 'G', true, 2, 0)
	c.Classify('&', 'a', 'G', true, 9, 0)

	rows := c.ReportUsage(classify.ReportOptions{UsedOnly: true})
	require.Len(t, rows, 2)
	assert.Equal(t, seq.RootKey('&', 'a', 'G').String(), rows[0].Key)
	assert.Equal(t, seq.ValueKey('&', 'a', 'G', 2).String(), rows[1].Key)
}
