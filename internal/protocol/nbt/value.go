package nbt

import "sort"

// Value is one tag payload. The set of implementations is closed.
type Value interface {
	Tag() Tag
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
	Compound  map[string]Value
)

// List is a homogeneous sequence. Elem is TagEnd only when Items is empty.
type List struct {
	Elem  Tag
	Items []Value
}

func (Byte) Tag() Tag      { return TagByte }
func (Short) Tag() Tag     { return TagShort }
func (Int) Tag() Tag       { return TagInt }
func (Long) Tag() Tag      { return TagLong }
func (Float) Tag() Tag     { return TagFloat }
func (Double) Tag() Tag    { return TagDouble }
func (ByteArray) Tag() Tag { return TagByteArray }
func (String) Tag() Tag    { return TagString }
func (*List) Tag() Tag     { return TagList }
func (Compound) Tag() Tag  { return TagCompound }
func (IntArray) Tag() Tag  { return TagIntArray }
func (LongArray) Tag() Tag { return TagLongArray }

// Keys returns the compound's keys in the order they are encoded.
func (c Compound) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Blob is a named root compound.
type Blob struct {
	Name string
	Root Compound
}

// NewBlob returns a blob with an empty root name.
func NewBlob(root Compound) *Blob {
	if root == nil {
		root = Compound{}
	}
	return &Blob{Root: root}
}
