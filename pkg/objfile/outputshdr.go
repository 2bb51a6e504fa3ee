package objfile

import (
	"github.com/ksco/embed/pkg/utils"
)

// OutputShdr is the section header table. Entry 0 stays zeroed as the
// null section; entry i describes the chunk with Shndx i.
type OutputShdr struct {
	Chunk
}

func NewOutputShdr() *OutputShdr {
	return &OutputShdr{Chunk: NewChunk()}
}

func (o *OutputShdr) Kind() ChunkKind {
	return ChunkKindHeader
}

// sections returns the indexed chunks of ctx, in index order.
func (o *OutputShdr) sections(ctx *Context) []Chunker {
	return utils.RemoveIf(append([]Chunker(nil), ctx.Chunks...), func(c Chunker) bool {
		return c.GetShndx() <= 0
	})
}

func (o *OutputShdr) UpdateShdr(ctx *Context) {
	o.Shdr.Size = uint64(len(o.sections(ctx))+1) * ShdrSize
}

func (o *OutputShdr) CopyBuf(ctx *Context) {
	table := ctx.Buf[o.Shdr.Offset : o.Shdr.Offset+o.Shdr.Size]
	clear(table[:ShdrSize])
	for _, sec := range o.sections(ctx) {
		utils.Write[Shdr](table[uint64(sec.GetShndx())*ShdrSize:], *sec.GetShdr())
	}
}
