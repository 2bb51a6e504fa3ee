package objfile

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type failingFile struct {
	afero.File
}

func (f failingFile) Write(p []byte) (int, error) {
	n := len(p) / 2
	if _, err := f.File.Write(p[:n]); err != nil {
		return 0, err
	}
	return n, errDiskFull
}

// failingFs hands out files that fail half way through a write.
type failingFs struct {
	afero.Fs
}

func (fs failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return failingFile{f}, nil
}

func TestNewFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data.bin", []byte{1, 2, 3}, 0644))

	file, err := NewFile(fs, "data.bin")
	require.NoError(t, err)
	assert.Equal(t, "data.bin", file.Name)
	assert.Equal(t, []byte{1, 2, 3}, file.Contents)
}

func TestNewFileMissing(t *testing.T) {
	_, err := NewFile(afero.NewMemMapFs(), "missing.bin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.bin")
}

func TestWriteObject(t *testing.T) {
	fs := afero.NewMemMapFs()
	image := Build(NewContext("foo", []byte{1, 2, 3, 4}))

	require.NoError(t, WriteObject(fs, "foo.o", image))

	written, err := afero.ReadFile(fs, "foo.o")
	require.NoError(t, err)
	assert.Equal(t, image, written)
}

func TestWriteObjectTruncates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "foo.o", make([]byte, 4096), 0644))

	require.NoError(t, WriteObject(fs, "foo.o", []byte("short")))

	written, err := afero.ReadFile(fs, "foo.o")
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), written)
}

func TestWriteObjectReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteObject(fs, "foo.o", []byte{1})
	require.Error(t, err)

	_, statErr := fs.Stat("foo.o")
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteObjectRemovesPartialFile(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := failingFs{base}

	err := WriteObject(fs, "foo.o", make([]byte, 512))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)

	exists, err := afero.Exists(base, "foo.o")
	require.NoError(t, err)
	assert.False(t, exists)
}
