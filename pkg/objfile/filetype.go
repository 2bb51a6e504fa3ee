package objfile

import (
	"debug/elf"
	"encoding/binary"
)

type FileType = int8

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty   FileType = iota
	FileTypeObject  FileType = iota
	FileTypeDso     FileType = iota
	FileTypeExec    FileType = iota
)

func GetFileType(contents []byte) FileType {
	if len(contents) == 0 {
		return FileTypeEmpty
	}

	if CheckMagic(contents) && len(contents) >= 18 {
		et := elf.Type(binary.LittleEndian.Uint16(contents[16:]))
		switch et {
		case elf.ET_REL:
			return FileTypeObject
		case elf.ET_DYN:
			return FileTypeDso
		case elf.ET_EXEC:
			return FileTypeExec
		}
	}

	return FileTypeUnknown
}

type FileTypeStringer struct {
	FileType
}

func (fts FileTypeStringer) String() string {
	switch fts.FileType {
	case FileTypeEmpty:
		return "empty"
	case FileTypeObject:
		return "relocatable"
	case FileTypeDso:
		return "shared object"
	case FileTypeExec:
		return "executable"
	}
	return "unknown"
}
