package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/src/proj")
	mfs.AddFile("types/credential.go", "package types")
	mfs.AddFile("main.go", "package main")
	mfs.AddFile("operation/credential/issue_process.go", "package credential")

	dir, err := mfs.Open("/src/proj")
	require.NoError(t, err)
	require.Equal(t, "/src/proj", dir.Path())

	var files, dirs []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() {
			dirs = append(dirs, file.RelativePath())
		} else {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"main.go", "operation/credential/issue_process.go", "types/credential.go"}, files)
	require.Equal(t, []string{".", "operation", "operation/credential", "types"}, dirs)
}

func TestMemoryFileSystem_OpenSubdirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/src/proj")
	mfs.AddFile("types/credential.go", "package types")
	mfs.AddFile("state/state.go", "package state")

	dir, err := mfs.Open("types")
	require.NoError(t, err)

	var paths []string
	require.NoError(t, dir.Walk(func(file File, err error) error {
		paths = append(paths, file.Path())
		return nil
	}))
	require.Equal(t, []string{"/src/proj/types", "/src/proj/types/credential.go"}, paths)

	_, err = mfs.Open("missing")
	require.Error(t, err)
	_, err = mfs.Open("types/credential.go")
	require.Error(t, err)
}

func walkedFile(t *testing.T, mfs *MemoryFileSystem, rel string) File {
	t.Helper()
	dir, err := mfs.Open(mfs.Root())
	require.NoError(t, err)

	var found File
	require.NoError(t, dir.Walk(func(file File, err error) error {
		if err == nil && file.RelativePath() == rel {
			found = file
		}
		return nil
	}))
	require.NotNil(t, found, "no walked file %s", rel)
	return found
}

func TestMemoryFileSystem_ReadContent(t *testing.T) {
	mfs := NewMemoryFileSystem("/src/proj")
	mfs.AddFile("a.go", "package a")
	mfs.AddBytes("bin.go", []byte{'o', 'k', 0xff})

	content, err := walkedFile(t, mfs, "a.go").ReadContent()
	require.NoError(t, err)
	require.Equal(t, "package a", string(content))

	content, err = walkedFile(t, mfs, "bin.go").ReadContent()
	require.NoError(t, err)
	require.Equal(t, []byte{'o', 'k', 0xff}, content)
}

func TestMemoryFileSystem_AddUnreadable(t *testing.T) {
	mfs := NewMemoryFileSystem("/src/proj")
	mfs.AddUnreadable("locked.go", fs.ErrPermission)

	_, err := walkedFile(t, mfs, "locked.go").ReadContent()
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrPermission))

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "/src/proj/locked.go", pathErr.Path)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/src/proj")
	mfs.AddFile("a.go", "package a")

	info, err := mfs.Stat("/src/proj/a.go")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "a.go", info.Name())
	require.Equal(t, int64(len("package a")), info.Size())

	info, err = mfs.Stat("/src/proj")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_WalkStopsOnCallbackError(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddFile("a.go", "")
	mfs.AddFile("b.go", "")

	stop := errors.New("stop")
	visited := 0
	dir, err := mfs.Open("/r")
	require.NoError(t, err)
	err = dir.Walk(func(file File, err error) error {
		visited++
		if file.RelativePath() == "a.go" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, visited)
}
