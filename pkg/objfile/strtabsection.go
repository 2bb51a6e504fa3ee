package objfile

import "debug/elf"

type StrtabSection struct {
	Chunk
	Table *StringTable
}

func NewStrtabSection(name string) *StrtabSection {
	s := &StrtabSection{Chunk: NewChunk(), Table: NewStringTable()}
	s.Name = name
	s.Shdr.Type = uint32(elf.SHT_STRTAB)
	return s
}

func (s *StrtabSection) UpdateShdr(ctx *Context) {
	s.Shdr.Size = s.Table.Size()
}

func (s *StrtabSection) CopyBuf(ctx *Context) {
	copy(ctx.Buf[s.Shdr.Offset:], s.Table.Bytes())
}
