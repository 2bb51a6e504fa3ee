package objfile

import (
	"debug/elf"
	"encoding/binary"
)

type MachineType = int8

const (
	MachineTypeNone   MachineType = iota
	MachineTypeX86_64 MachineType = iota
)

func GetMachineTypeFromContents(contents []byte) MachineType {
	switch GetFileType(contents) {
	case FileTypeObject, FileTypeDso, FileTypeExec:
		if len(contents) < 20 {
			return MachineTypeNone
		}
		machine := binary.LittleEndian.Uint16(contents[18:])
		if machine == uint16(elf.EM_X86_64) && contents[4] == byte(elf.ELFCLASS64) {
			return MachineTypeX86_64
		}
	}

	return MachineTypeNone
}

type MachineTypeStringer struct {
	MachineType
}

func (mts MachineTypeStringer) String() string {
	switch mts.MachineType {
	case MachineTypeX86_64:
		return "x86-64"
	}
	return "none"
}
