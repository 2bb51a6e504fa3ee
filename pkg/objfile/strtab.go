package objfile

// StringTable is an append-only ELF string table. Offset 0 is the
// reserved empty name.
type StringTable struct {
	buf []byte
}

func NewStringTable() *StringTable {
	return &StringTable{buf: []byte{0}}
}

// Add appends name and its terminator and returns the offset of name's
// first byte. Names are not deduplicated.
func (t *StringTable) Add(name string) uint32 {
	offset := uint32(len(t.buf))
	t.buf = append(t.buf, name...)
	t.buf = append(t.buf, 0)
	return offset
}

func (t *StringTable) Bytes() []byte {
	return t.buf
}

func (t *StringTable) Size() uint64 {
	return uint64(len(t.buf))
}
