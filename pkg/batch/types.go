package batch

import "encoding/base64"

// Field is a single named key/value entry within a document. ItemNo 0 marks
// a header field; positive values associate the field with a line item.
type Field struct {
	Name   string `json:"Name"`
	Value  string `json:"Value"`
	ItemNo int    `json:"ItemNo"`
}

// NewField creates a new Field. No validation is performed at this layer;
// empty names and values are accepted.
func NewField(name, value string, itemNo int) Field {
	return Field{
		Name:   name,
		Value:  value,
		ItemNo: itemNo,
	}
}

// File is a single named file attachment carried as base64 data. Key is
// reserved for a server-assigned identifier and is always nil at
// construction.
type File struct {
	Name string  `json:"Name"`
	Key  *string `json:"Key"`
	Data string  `json:"Data"`
}

// NewFileBase64 creates a File from data that is already base64-encoded.
// The string is passed through unchecked; a malformed encoding is the
// server's to reject.
func NewFileBase64(name, data string) File {
	return File{
		Name: name,
		Data: data,
	}
}

// NewFileBytes creates a File from raw bytes, encoding them with the
// standard padded base64 alphabet.
func NewFileBytes(name string, data []byte) File {
	return NewFileBase64(name, base64.StdEncoding.EncodeToString(data))
}

// Document is a named group of fields and file attachments within a
// request. Documents are append-only and owned exclusively by their parent
// Request.
type Document struct {
	name   string
	fields []Field
	files  []File
}

func newDocument(name string) *Document {
	return &Document{
		name:   name,
		fields: make([]Field, 0),
		files:  make([]File, 0),
	}
}

// Name returns the document name.
func (d *Document) Name() string {
	return d.name
}

// AddHeaderField appends a header field (item number 0) and returns the
// document for chaining.
func (d *Document) AddHeaderField(name, value string) *Document {
	d.fields = append(d.fields, NewField(name, value, 0))
	return d
}

// AddItemField appends a field bound to the given item number and returns
// the document for chaining. The item number is not range-checked here;
// only values > 0 are meaningful as item fields.
func (d *Document) AddItemField(name, value string, itemNo int) *Document {
	d.fields = append(d.fields, NewField(name, value, itemNo))
	return d
}

// AddFileBase64 appends a file attachment from a base64 string and returns
// the document for chaining.
func (d *Document) AddFileBase64(name, data string) *Document {
	d.files = append(d.files, NewFileBase64(name, data))
	return d
}

// AddFileBytes appends a file attachment from raw bytes and returns the
// document for chaining.
func (d *Document) AddFileBytes(name string, data []byte) *Document {
	d.files = append(d.files, NewFileBytes(name, data))
	return d
}

// Fields returns a copy of the document's fields in insertion order.
func (d *Document) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Files returns a copy of the document's file attachments in insertion
// order.
func (d *Document) Files() []File {
	out := make([]File, len(d.files))
	copy(out, d.files)
	return out
}

func (d *Document) clone() *Document {
	c := newDocument(d.name)
	c.fields = append(c.fields, d.fields...)
	c.files = append(c.files, d.files...)
	return c
}
