package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Roster",
		Columns: []string{"TraineeId", "TraineeName"},
		Rows:    [][]string{{"7", "Asha"}, {"8", "Ravi, Jr"}},
	}
}

func TestCSVRender(t *testing.T) {
	out, err := CSV{}.Render(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "TraineeId,TraineeName\n7,Asha\n8,\"Ravi, Jr\"\n", string(out))
}

func TestRenderRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"9"})

	_, err := CSV{}.Render(table)
	assert.Error(t, err)
	_, err = PDF{}.Render(table)
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := PDF{}.Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, "csv", r.Extension())

	r, err = ForFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", r.ContentType())

	_, err = ForFormat("xlsx")
	assert.Error(t, err)
}
