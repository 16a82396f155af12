package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	records := []errcollect.ScanRecord{
		{FilePath: "/types/a.go", Line: 7, Category1: "invalid", Category2: "", Detail: "empty id, %q"},
	}

	require.NoError(t, Write(&buf, records, 0))

	assert.Equal(t,
		"file name,line number,category-1,category-2,detail\n"+
			"/types/a.go,7,invalid,,\"empty id, %q\"\n",
		buf.String())
}

func TestWrite_CustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	records := []errcollect.ScanRecord{{FilePath: "/a.go", Line: 1, Detail: "x"}}

	require.NoError(t, Write(&buf, records, '\t'))
	assert.Equal(t, "file name\tline number\tcategory-1\tcategory-2\tdetail\n/a.go\t1\t\t\tx\n", buf.String())
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	records := []errcollect.ScanRecord{
		{FilePath: "/b.go", Line: 1, Detail: "no category"},
		{FilePath: "/a.go", Line: 2, Category1: "state", Detail: "not found"},
	}

	paths, err := WriteAll(records, Options{
		Dir:        dir,
		ByFile:     errcollect.DefaultByFileReport,
		ByCategory: errcollect.DefaultByCategoryReport,
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	byFile := readCSV(t, paths[0])
	require.Len(t, byFile, 3)
	assert.Equal(t, errcollect.ReportHeader, byFile[0])
	assert.Equal(t, "/a.go", byFile[1][0])
	assert.Equal(t, "/b.go", byFile[2][0])

	byCategory := readCSV(t, paths[1])
	require.Len(t, byCategory, 3)
	assert.Equal(t, "state", byCategory[1][2])
	assert.Equal(t, "", byCategory[2][2])
}

func TestWriteAll_NoRecordsStillWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(nil, Options{Dir: dir, ByFile: "f.csv", ByCategory: "c.csv"})
	require.NoError(t, err)

	for _, p := range paths {
		rows := readCSV(t, p)
		require.Len(t, rows, 1)
		assert.Equal(t, errcollect.ReportHeader, rows[0])
	}
}

func TestWriteFile_Unwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should go cannot be created as a file.
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0755))

	err := WriteFile(target, nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcollect.ErrReportWrite)
	assert.Equal(t, errcollect.ExitReportFailure, errcollect.ExitCodeForError(err))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
