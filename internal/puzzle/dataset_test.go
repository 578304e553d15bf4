package puzzle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chronoquest/internal/puzzle"
)

const jsonDataset = `[
  {
    "id": "07-20",
    "targetYear": 1969,
    "clue": "Two astronauts walk on the Moon.",
    "category": "Science",
    "funFact": "The flag was knocked over by the ascent engine exhaust.",
    "articleTitle": "Apollo 11",
    "articleContent": "Neil Armstrong and Buzz Aldrin landed in the Sea of Tranquility."
  },
  {"id": "11-09", "targetYear": 1989, "clue": "The Berlin Wall falls.", "category": "Politics"}
]`

const yamlDataset = `
- id: "07-14"
  targetYear: 1789
  clue: Parisians storm a royal fortress.
  category: Revolutions
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbedded(t *testing.T) {
	records, err := puzzle.Embedded()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "01-01", records[0].DateKey)
	assert.Equal(t, 1863, records[0].TargetYear)
	assert.Equal(t, "Civil Rights", records[0].Category)
	assert.Equal(t, "10-24", records[1].DateKey)
	assert.Equal(t, 1945, records[1].TargetYear)
	assert.Equal(t, "United Nations Day", records[1].ArticleTitle)
}

func TestLoadFile_JSON(t *testing.T) {
	records, err := puzzle.LoadFile(writeFile(t, "history_data.json", jsonDataset))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apollo 11", records[0].ArticleTitle)
	assert.Equal(t, 1989, records[1].TargetYear)
}

func TestLoadFile_YAML(t *testing.T) {
	records, err := puzzle.LoadFile(writeFile(t, "puzzles.yml", yamlDataset))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "07-14", records[0].DateKey)
	assert.Equal(t, 1789, records[0].TargetYear)
}

func TestLoadFile_UnknownField(t *testing.T) {
	_, err := puzzle.LoadFile(writeFile(t, "bad.json", `[{"id":"01-01","year":1863}]`))
	assert.Error(t, err)

	_, err = puzzle.LoadFile(writeFile(t, "bad.yaml", "- id: \"01-01\"\n  year: 1863\n"))
	assert.Error(t, err)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := puzzle.LoadFile(writeFile(t, "puzzles.csv", "id,targetYear\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := puzzle.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	c, err := puzzle.LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, "01-01", c.Default().DateKey)

	c, err = puzzle.LoadCatalog(writeFile(t, "p.yaml", yamlDataset))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = puzzle.LoadCatalog(writeFile(t, "empty.json", `[]`))
	assert.ErrorIs(t, err, puzzle.ErrEmptyCatalog)
}
