package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	res := Parse("Project,Store,SKU\nJob-001,Store-A,SKU-1\nJob-002,Store-B,SKU-2\n")

	require.Empty(t, res.Errors)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"Project", "Store", "SKU"}, res.Header)
	assert.Equal(t, Row{"Project": "Job-001", "Store": "Store-A", "SKU": "SKU-1"}, res.Rows[0])
	assert.Equal(t, "Job-002", res.Rows[1]["Project"])
}

func TestParse_HeaderOnly(t *testing.T) {
	res := Parse("Project,Store,SKU\n")

	assert.Empty(t, res.Rows)
	require.Len(t, res.Errors, 1)
	assert.Zero(t, res.Errors[0].Line)
}

func TestParse_Empty(t *testing.T) {
	res := Parse("")

	assert.Empty(t, res.Rows)
	require.Len(t, res.Errors, 1)
}

func TestParse_CRLFAndTrailingNewline(t *testing.T) {
	res := Parse("A,B\r\n1,2\r\n")

	require.Empty(t, res.Errors)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "2", res.Rows[0]["B"])
}

func TestParse_QuotedFields(t *testing.T) {
	res := Parse("Name,Note\n\"Widget, \"\"A\"\"\",plain\n")

	require.Empty(t, res.Errors)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, `Widget, "A"`, res.Rows[0]["Name"])
	assert.Equal(t, "plain", res.Rows[0]["Note"])
}

func TestParse_TrailingCommaYieldsEmptyField(t *testing.T) {
	res := Parse("A,B,C\n1,2,\n")

	require.Empty(t, res.Errors)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "", res.Rows[0]["C"])
}

func TestParse_WidthMismatchSkipsOnlyThatLine(t *testing.T) {
	res := Parse("A,B,C\n1,2,3\n1,2\n4,5,6\n")

	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Line, "line numbers are 1-based counting the header")
	assert.Contains(t, res.Errors[0].Error(), "line 3")

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "1", res.Rows[0]["A"])
	assert.Equal(t, "6", res.Rows[1]["C"])
}

func TestParse_HeaderTrimmed(t *testing.T) {
	res := Parse(" Project , Store \nJob-001,Store-A\n")

	require.Empty(t, res.Errors)
	assert.Equal(t, []string{"Project", "Store"}, res.Header)
	assert.Equal(t, "Job-001", res.Rows[0]["Project"])
}

func TestWriteTable_RoundTripQuoting(t *testing.T) {
	header := []string{"Name", "Qty"}
	rows := []Row{
		{"Name": `Widget, "A"`, "Qty": "3"},
		{"Name": "plain", "Qty": "1"},
	}

	out := WriteTable(header, rows)
	res := Parse(out)

	require.Empty(t, res.Errors)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, rows[0], res.Rows[0])
	assert.Equal(t, rows[1], res.Rows[1])
}

func TestWriteTable_MissingFieldsEmpty(t *testing.T) {
	out := WriteTable([]string{"A", "B"}, []Row{{"A": "1"}})
	assert.Equal(t, "A,B\n1,\n", out)
}
