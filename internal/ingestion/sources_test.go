package ingestion

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDir_ReadsMatchingFilesSorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_resume.json"), []byte(`{"Name":"B"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_resume.json"), []byte(`{"Name":"A"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	docs, err := FromDir(dir, ".json", ".jsonl")
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "a_resume.json", docs[0].Name)
	assert.Equal(t, "b_resume.json", docs[1].Name)
	assert.Equal(t, `{"Name":"A"}`, string(docs[0].Content))
}

func TestFromDir_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UPPER.JSON"), []byte(`{}`), 0o644))

	docs, err := FromDir(dir, ".json")
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestFromDir_MissingDirectory(t *testing.T) {
	_, err := FromDir(filepath.Join(t.TempDir(), "nope"), ".json")
	assert.Error(t, err)
}

func TestFromZip_ExtractsAndFlattensPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumes.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range map[string]string{
		"folder/candidate_b.json": `{"Name":"B"}`,
		"candidate_a.json":        `{"Name":"A"}`,
		"readme.md":               "skip",
	} {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	docs, err := FromZip(path, ".json")
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "candidate_a.json", docs[0].Name)
	assert.Equal(t, "candidate_b.json", docs[1].Name)
}

func TestFromZip_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.zip")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := FromZip(path, ".json")
	assert.Error(t, err)
}
