package utils

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDieExitsWithOne(t *testing.T) {
	if os.Getenv("EMBED_UTILS_DIE") == "1" {
		Die(errors.New("cannot read data.bin"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDieExitsWithOne$")
	cmd.Env = append(os.Environ(), "EMBED_UTILS_DIE=1")
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "unexpected error: %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "embed:")
	assert.Contains(t, stderr.String(), "fatal:")
	assert.Contains(t, stderr.String(), "cannot read data.bin")
}

func TestWriteRead(t *testing.T) {
	type pair struct {
		A uint16
		B uint32
	}
	buf := make([]byte, 6)
	Write[pair](buf, pair{A: 0x0102, B: 0x03040506})

	assert.Equal(t, []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03}, buf)
	assert.Equal(t, pair{A: 0x0102, B: 0x03040506}, Read[pair](buf))
}

func TestRemoveIf(t *testing.T) {
	odd := func(n int) bool { return n%2 == 1 }
	assert.Equal(t, []int{2, 4}, RemoveIf([]int{1, 2, 3, 4, 5}, odd))
	assert.Empty(t, RemoveIf([]int{1, 3}, odd))
}
