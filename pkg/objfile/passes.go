package objfile

import (
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ksco/embed/pkg/utils"
)

// Build runs every pass for ctx and returns the finished object image.
func Build(ctx *Context) []byte {
	ctx.Log.Debug("building object",
		zap.String("name", ctx.Arg.Name),
		zap.String("blob", humanize.Bytes(uint64(len(ctx.Data)))))

	CreateSyntheticSections(ctx)
	AssignSectionIndices(ctx)
	BuildStrings(ctx)
	BuildSymbolTable(ctx)

	for _, chunk := range ctx.Chunks {
		chunk.UpdateShdr(ctx)
	}

	fileSize := SetSectionOffsets(ctx)

	ctx.Buf = make([]byte, fileSize)
	for _, chunk := range ctx.Chunks {
		chunk.CopyBuf(ctx)
	}

	ctx.Log.Debug("object built", zap.Uint64("size", fileSize))
	return ctx.Buf
}

// CreateSyntheticSections pushes the chunks in on-disk order.
func CreateSyntheticSections(ctx *Context) {
	push := func(chunk Chunker) Chunker {
		ctx.Chunks = append(ctx.Chunks, chunk)
		return chunk
	}

	ctx.Ehdr = push(NewOutputEhdr()).(*OutputEhdr)
	ctx.Shdr = push(NewOutputShdr()).(*OutputShdr)
	ctx.ShStrtab = push(NewStrtabSection(".shstrtab")).(*StrtabSection)
	ctx.Strtab = push(NewStrtabSection(".strtab")).(*StrtabSection)
	ctx.Symtab = push(NewSymtabSection()).(*SymtabSection)
	ctx.Rodata = push(NewRodataSection()).(*RodataSection)
}

func AssignSectionIndices(ctx *Context) {
	sections := make([]Chunker, len(ctx.Chunks))
	copy(sections, ctx.Chunks)

	sections = utils.RemoveIf[Chunker](sections, func(chunk Chunker) bool {
		return chunk.Kind() == ChunkKindHeader
	})

	for i, chunk := range sections {
		chunk.SetShndx(int64(i) + 1)
	}
}

func BuildStrings(ctx *Context) {
	for _, chunk := range ctx.Chunks {
		if chunk.GetShndx() > 0 {
			chunk.GetShdr().Name = ctx.ShStrtab.Table.Add(chunk.GetName())
		}
	}
}

func BuildSymbolTable(ctx *Context) {
	ctx.Symtab.Table = BuildSymbols(ctx.Strtab.Table, ctx.Arg.Name, ctx.Arg.Mode,
		uint64(len(ctx.Data)), uint16(ctx.Rodata.Shndx), ctx.Rodata.Name)

	syms := ctx.Symtab.Table.Syms
	for i := uint32(0); i < ctx.Symtab.Table.FirstGlobal; i++ {
		utils.Assert(syms[i].IsLocal())
	}
}

// PlanLayout returns the offset of each region when regions of the given
// sizes are laid out back to back starting at base.
func PlanLayout(base uint64, sizes []uint64) []uint64 {
	offsets := make([]uint64, len(sizes))
	fileoff := base
	for i, size := range sizes {
		offsets[i] = fileoff
		fileoff += size
	}
	return offsets
}

// SetSectionOffsets places the chunks contiguously in list order and
// returns the total file size.
func SetSectionOffsets(ctx *Context) uint64 {
	sizes := make([]uint64, len(ctx.Chunks))
	for i, chunk := range ctx.Chunks {
		sizes[i] = chunk.GetShdr().Size
	}

	offsets := PlanLayout(0, sizes)
	for i, chunk := range ctx.Chunks {
		chunk.GetShdr().Offset = offsets[i]
		ctx.Log.Debug("section placed",
			zap.String("name", chunk.GetName()),
			zap.Uint64("offset", offsets[i]),
			zap.Uint64("size", sizes[i]))
	}

	utils.Assert(ctx.Ehdr.Shdr.Offset == 0)
	utils.Assert(ctx.Shdr.Shdr.Offset == EhdrSize)

	if len(ctx.Chunks) == 0 {
		return 0
	}
	last := ctx.Chunks[len(ctx.Chunks)-1].GetShdr()
	return last.Offset + last.Size
}
