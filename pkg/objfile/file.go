package objfile

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type File struct {
	Name     string
	Contents []byte
}

// NewFile reads filename whole. A missing or unreadable file is an error,
// never an empty blob.
func NewFile(fs afero.Fs, filename string) (*File, error) {
	contents, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", filename)
	}
	return &File{
		Name:     filename,
		Contents: contents,
	}, nil
}

// WriteObject writes image to filename front to back. If anything fails
// after the file was created it is removed again.
func WriteObject(fs afero.Fs, filename string, image []byte) (err error) {
	file, err := fs.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", filename)
	}

	defer func() {
		if err == nil {
			return
		}
		if rerr := fs.Remove(filename); rerr != nil {
			err = multierror.Append(err, errors.Wrapf(rerr, "cannot remove %s", filename))
		}
	}()

	if _, err = file.Write(image); err != nil {
		file.Close()
		return errors.Wrapf(err, "cannot write %s", filename)
	}
	if err = file.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %s", filename)
	}
	return nil
}
