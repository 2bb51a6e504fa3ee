package objfile

import (
	"debug/elf"

	"github.com/pkg/errors"

	"github.com/ksco/embed/pkg/utils"
)

// InputFile is a parsed ELF64 little-endian relocatable object.
type InputFile struct {
	File         *File
	Ehdr         Ehdr
	ElfSections  []Shdr
	ElfSyms      []Sym
	FirstGlobal  int64
	ShStrtab     []byte
	SymbolStrtab []byte
}

func NewInputFile(file *File) (*InputFile, error) {
	f := &InputFile{File: file}
	contents := file.Contents
	if uint64(len(contents)) < EhdrSize {
		return nil, errors.Errorf("%s: file too small", file.Name)
	}
	if !CheckMagic(contents) {
		return nil, errors.Errorf("%s: not an ELF file", file.Name)
	}
	if contents[elf.EI_CLASS] != byte(elf.ELFCLASS64) ||
		contents[elf.EI_DATA] != byte(elf.ELFDATA2LSB) {
		return nil, errors.Errorf("%s: not a 64-bit little-endian ELF file", file.Name)
	}

	f.Ehdr = utils.Read[Ehdr](contents)

	numSections := uint64(f.Ehdr.ShNum)
	end := f.Ehdr.ShOff + numSections*ShdrSize
	if end < f.Ehdr.ShOff || uint64(len(contents)) < end {
		return nil, errors.Errorf("%s: section header table is out of range", file.Name)
	}

	for i := uint64(0); i < numSections; i++ {
		f.ElfSections = append(f.ElfSections,
			utils.Read[Shdr](contents[f.Ehdr.ShOff+i*ShdrSize:]))
	}

	var err error
	if len(f.ElfSections) > 0 {
		f.ShStrtab, err = f.GetBytesFromIdx(int64(f.Ehdr.ShStrndx))
		if err != nil {
			return nil, err
		}
	}

	if symtab := f.FindSection(uint32(elf.SHT_SYMTAB)); symtab != nil {
		f.FirstGlobal = int64(symtab.Info)
		if err = f.FillUpElfSyms(symtab); err != nil {
			return nil, err
		}
		f.SymbolStrtab, err = f.GetBytesFromIdx(int64(symtab.Link))
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (f *InputFile) GetBytesFromShdr(s *Shdr) ([]byte, error) {
	end := s.Offset + s.Size
	if end < s.Offset || uint64(len(f.File.Contents)) < end {
		return nil, errors.Errorf("%s: section header is out of range: %d", f.File.Name, s.Offset)
	}

	return f.File.Contents[s.Offset:end], nil
}

func (f *InputFile) GetBytesFromIdx(idx int64) ([]byte, error) {
	if idx < 0 || idx >= int64(len(f.ElfSections)) {
		return nil, errors.Errorf("%s: section index %d is out of range", f.File.Name, idx)
	}
	return f.GetBytesFromShdr(&f.ElfSections[idx])
}

func (f *InputFile) FillUpElfSyms(s *Shdr) error {
	bs, err := f.GetBytesFromShdr(s)
	if err != nil {
		return err
	}

	nums := uint64(len(bs)) / SymSize
	f.ElfSyms = make([]Sym, 0, nums)
	for i := uint64(0); i < nums; i++ {
		f.ElfSyms = append(f.ElfSyms, utils.Read[Sym](bs[i*SymSize:]))
	}
	return nil
}

func (f *InputFile) FindSection(ty uint32) *Shdr {
	for i := 0; i < len(f.ElfSections); i++ {
		sec := &f.ElfSections[i]
		if sec.Type == ty {
			return sec
		}
	}
	return nil
}

// FindSectionByName returns the index of the named section or -1.
func (f *InputFile) FindSectionByName(name string) int {
	for i := range f.ElfSections {
		if f.SectionName(i) == name {
			return i
		}
	}
	return -1
}

func (f *InputFile) SectionName(idx int) string {
	return getName(f.ShStrtab, f.ElfSections[idx].Name)
}

func (f *InputFile) SymbolName(idx int) string {
	return getName(f.SymbolStrtab, f.ElfSyms[idx].Name)
}

// FindSymbol returns the named symbol or nil.
func (f *InputFile) FindSymbol(name string) *Sym {
	for i := range f.ElfSyms {
		if i > 0 && f.SymbolName(i) == name {
			return &f.ElfSyms[i]
		}
	}
	return nil
}

func (f *InputFile) GetGlobalSyms() []Sym {
	if f.FirstGlobal > int64(len(f.ElfSyms)) {
		return nil
	}
	return f.ElfSyms[f.FirstGlobal:]
}
