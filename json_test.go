package bincif

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestCategory_ToJSON_SubstitutesAbsentCells(t *testing.T) {
	cat := atomSite(t)

	m, err := cat.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "atom_site", m["name"])

	rows, ok := m["rows"].([]map[string]string)
	require.True(t, ok)
	require.Len(t, rows, 3)

	require.Equal(t, "0", rows[0]["charge"])
	require.Equal(t, ".", rows[1]["charge"])
	require.Equal(t, "?", rows[2]["charge"])

	require.Equal(t, "1", rows[0]["id"])
	require.Equal(t, "foo", rows[0]["label"])
	require.Equal(t, "0.5", rows[1]["occupancy"])
}

func TestFile_ToJSON_Structure(t *testing.T) {
	file := NewFile(testEncodedFile())

	m, err := file.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "0.3.0", m["version"])
	require.Equal(t, "bincif-test", m["encoder"])

	blocks, ok := m["dataBlocks"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, blocks, 2)
	require.Equal(t, "1ABC", blocks[0]["header"])
}

func TestFile_MarshalJSON_RoundTrips(t *testing.T) {
	file := NewFile(testEncodedFile())

	data, err := json.Marshal(file)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "0.3.0", decoded["version"])

	blocks, ok := decoded["dataBlocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 2)
}

func TestCategory_MarshalJSON_RendersRows(t *testing.T) {
	cat := atomSite(t)

	data, err := json.Marshal(cat)
	require.NoError(t, err)

	var decoded struct {
		Name string              `json:"name"`
		Rows []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "atom_site", decoded.Name)
	require.Len(t, decoded.Rows, 3)
	require.Equal(t, "?", decoded.Rows[2]["charge"])
}
