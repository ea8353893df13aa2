package batch

import "errors"

// ErrInvalidRequest is returned by Validate when the request violates a
// structural invariant. The predicate is boolean, not diagnostic: the error
// carries no further detail, and the request must be mutated before a
// retry can succeed.
var ErrInvalidRequest = errors.New("interface5: request is not valid")

// ErrSerialize is returned when rendering a validated request to the wire
// format fails.
var ErrSerialize = errors.New("interface5: failed to serialize request")

// Request is an Interface5 batch request under construction. Documents are
// appended by name and addressed by the stable index AddDocument returns.
type Request struct {
	name      string
	documents []*Document
}

// New creates an empty request with the given name.
func New(name string) *Request {
	return &Request{
		name:      name,
		documents: make([]*Document, 0),
	}
}

// Name returns the request name.
func (r *Request) Name() string {
	return r.name
}

// Len returns the number of documents in the request.
func (r *Request) Len() int {
	return len(r.documents)
}

// AddDocument appends a new empty document and returns its zero-based
// index. Indices are stable for the lifetime of the request; there is no
// removal operation.
func (r *Request) AddDocument(name string) int {
	r.documents = append(r.documents, newDocument(name))
	return len(r.documents) - 1
}

// Document returns the document at the given index, or nil when the index
// is out of range. The returned document remains owned by the request and
// may be mutated further before validation.
func (r *Request) Document(index int) *Document {
	if index < 0 || index >= len(r.documents) {
		return nil
	}
	return r.documents[index]
}

// IsValid reports whether the request currently satisfies the structural
// invariants: it must contain at least one document, and each document's
// field item numbers must form a continuous sequence.
//
// A document with no fields has an empty item-number set, which is
// trivially continuous, so it passes this check even without files. See
// TestIsValid_EmptyDocument for the pinned behavior.
func (r *Request) IsValid() bool {
	if len(r.documents) == 0 {
		return false
	}

	for _, doc := range r.documents {
		if len(doc.fields) == 0 && len(doc.files) == 0 && !continuousItemNumbers(doc.fields) {
			return false
		}
	}

	return true
}

// continuousItemNumbers reports whether the item numbers of the given
// fields form a gapless 1..N run. Zeros (header fields) and duplicates are
// discarded first; the remaining set is continuous iff its maximum element
// does not exceed the number of distinct elements. An empty set is
// vacuously continuous.
func continuousItemNumbers(fields []Field) bool {
	distinct := make(map[int]struct{}, len(fields))
	for _, f := range fields {
		if f.ItemNo == 0 {
			continue
		}
		distinct[f.ItemNo] = struct{}{}
	}

	if len(distinct) == 0 {
		return true
	}

	max := 0
	for n := range distinct {
		if n > max {
			max = n
		}
	}

	return max <= len(distinct)
}

// Validate checks the structural invariants and, on success, returns a
// Validated holding a deep copy of the request content, frozen for
// transmission. Further mutation of the request does not affect the
// returned value. On failure it returns ErrInvalidRequest.
func (r *Request) Validate() (*Validated, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRequest
	}

	documents := make([]*Document, len(r.documents))
	for i, doc := range r.documents {
		documents[i] = doc.clone()
	}

	return &Validated{req: &Request{name: r.name, documents: documents}}, nil
}
