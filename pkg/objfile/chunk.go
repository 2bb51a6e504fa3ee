package objfile

// ChunkKind tells header chunks, which get no section header and no
// index, apart from the sections that follow them.
type ChunkKind uint8

const (
	ChunkKindHeader ChunkKind = iota
	ChunkKindData
)

// Chunker is one contiguous region of the output image.
type Chunker interface {
	Kind() ChunkKind
	GetShdr() *Shdr
	GetName() string
	GetShndx() int64
	SetShndx(a int64)
	UpdateShdr(ctx *Context)
	CopyBuf(ctx *Context)
}

// Chunk holds what every region carries. Embedders override UpdateShdr
// and CopyBuf; the defaults are no-ops.
type Chunk struct {
	Name  string
	Shdr  Shdr
	Shndx int64
}

func NewChunk() Chunk { return Chunk{} }

func (c *Chunk) Kind() ChunkKind         { return ChunkKindData }
func (c *Chunk) GetShdr() *Shdr          { return &c.Shdr }
func (c *Chunk) GetName() string         { return c.Name }
func (c *Chunk) GetShndx() int64         { return c.Shndx }
func (c *Chunk) SetShndx(a int64)        { c.Shndx = a }
func (c *Chunk) UpdateShdr(ctx *Context) {}
func (c *Chunk) CopyBuf(ctx *Context)    {}
