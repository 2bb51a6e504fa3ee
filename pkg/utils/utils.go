package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
)

var fatalPrefix = color.New(color.Bold, color.FgRed).Sprint("fatal:")

func MustNo(err error) {
	if err != nil {
		Fatal(err)
	}
}

func Fatal(v any) {
	fmt.Fprintln(os.Stderr, "embed:", fatalPrefix, fmt.Sprintf("%s", v))
	debug.PrintStack()
	os.Exit(1)
}

// Assert aborts on a broken internal invariant. It is never a user error.
func Assert(condition bool) {
	if !condition {
		Fatal("Assert failed")
	}
}

func Read[T any](data []byte) (val T) {
	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.LittleEndian, &val)
	MustNo(err)
	return
}

func Write[T any](data []byte, e T) {
	buf := &bytes.Buffer{}
	err := binary.Write(buf, binary.LittleEndian, e)
	MustNo(err)
	copy(data, buf.Bytes())
}

func RemoveIf[T any](elems []T, condition func(T) bool) []T {
	i := 0

	for _, elem := range elems {
		if condition(elem) {
			continue
		}
		elems[i] = elem
		i++
	}
	return elems[:i]
}

// Die reports err the way Fatal does, without the stack trace.
func Die(err error) {
	fmt.Fprintln(os.Stderr, "embed:", fatalPrefix, err)
	os.Exit(1)
}
