package objfile

import "go.uber.org/zap"

type SymbolMode = int8

const (
	// ModeBoundary emits <name>_begin and <name>_end markers.
	ModeBoundary SymbolMode = iota
	// ModeSingle emits one <name> object spanning the whole blob.
	ModeSingle SymbolMode = iota
)

type ContextArg struct {
	Name string
	Mode SymbolMode
}

// Context holds everything one embedding run builds. It is not reused
// across runs.
type Context struct {
	Arg ContextArg

	Data []byte
	Log  *zap.Logger

	Ehdr     *OutputEhdr
	Shdr     *OutputShdr
	ShStrtab *StrtabSection
	Strtab   *StrtabSection
	Symtab   *SymtabSection
	Rodata   *RodataSection

	Chunks []Chunker

	Buf []byte
}

func NewContext(name string, data []byte) *Context {
	return &Context{
		Arg: ContextArg{
			Name: name,
			Mode: ModeBoundary,
		},
		Data: data,
		Log:  zap.NewNop(),
	}
}
