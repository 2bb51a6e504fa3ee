package objfile

import "debug/elf"

// RodataSection carries the embedded blob unchanged.
type RodataSection struct {
	Chunk
}

func NewRodataSection() *RodataSection {
	r := &RodataSection{Chunk: NewChunk()}
	r.Name = ".rodata"
	r.Shdr.Type = uint32(elf.SHT_PROGBITS)
	r.Shdr.Flags = uint64(elf.SHF_ALLOC)
	return r
}

func (r *RodataSection) UpdateShdr(ctx *Context) {
	r.Shdr.Size = uint64(len(ctx.Data))
}

func (r *RodataSection) CopyBuf(ctx *Context) {
	copy(ctx.Buf[r.Shdr.Offset:], ctx.Data)
}
