package objfile

import (
	"debug/elf"

	"github.com/ksco/embed/pkg/utils"
)

// SymbolTable is the ordered symbol list of one object. Symbols below
// FirstGlobal are local, index 0 included.
type SymbolTable struct {
	Syms        []Sym
	FirstGlobal uint32
}

func newSym(name uint32, bind, typ uint8, shndx uint16, val, size uint64) Sym {
	sym := Sym{Name: name, Shndx: shndx, Val: val, Size: size}
	sym.SetBind(bind)
	sym.SetType(typ)
	return sym
}

// BuildSymbols lays out the symbols for a blob of size bytes living in
// section shndx. Data symbol names go into strtab first and the section
// symbol's name, secName, last.
func BuildSymbols(strtab *StringTable, name string, mode SymbolMode,
	size uint64, shndx uint16, secName string) *SymbolTable {
	global := func(symName string, val, symSize uint64) Sym {
		return newSym(strtab.Add(symName), uint8(elf.STB_GLOBAL), uint8(elf.STT_OBJECT),
			shndx, val, symSize)
	}

	var data []Sym
	switch mode {
	case ModeSingle:
		data = append(data, global(name, 0, size))
	case ModeBoundary:
		data = append(data,
			global(name+"_begin", 0, WordSize),
			global(name+"_end", size, WordSize))
	default:
		utils.Fatal("unknown symbol mode")
	}

	section := newSym(strtab.Add(secName), uint8(elf.STB_LOCAL), uint8(elf.STT_SECTION),
		shndx, 0, 0)

	t := &SymbolTable{Syms: []Sym{{}, section}}
	t.FirstGlobal = uint32(len(t.Syms))
	t.Syms = append(t.Syms, data...)
	return t
}

type SymtabSection struct {
	Chunk
	Table *SymbolTable
}

func NewSymtabSection() *SymtabSection {
	s := &SymtabSection{Chunk: NewChunk(), Table: &SymbolTable{}}
	s.Name = ".symtab"
	s.Shdr.Type = uint32(elf.SHT_SYMTAB)
	s.Shdr.EntSize = SymSize
	return s
}

func (s *SymtabSection) UpdateShdr(ctx *Context) {
	s.Shdr.Size = uint64(len(s.Table.Syms)) * SymSize
	s.Shdr.Link = uint32(ctx.Strtab.Shndx)
	s.Shdr.Info = s.Table.FirstGlobal
}

func (s *SymtabSection) CopyBuf(ctx *Context) {
	base := ctx.Buf[s.Shdr.Offset:]
	for i, sym := range s.Table.Syms {
		utils.Write[Sym](base[uint64(i)*SymSize:], sym)
	}
}
