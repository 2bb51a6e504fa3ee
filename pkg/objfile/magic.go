package objfile

import "bytes"

var elfMagic = []byte("\177ELF")

func CheckMagic(contents []byte) bool {
	return bytes.HasPrefix(contents, elfMagic)
}

func WriteMagic(contents []byte) {
	copy(contents, elfMagic)
}
