package batch

import (
	"encoding/json"
	"fmt"
)

// Validated is a request whose structural invariants held at the moment
// (*Request).Validate was called. It is immutable, it is the only type the
// transport layer accepts, and it is the only type that can be rendered to
// the wire format. There is no other way to obtain one.
type Validated struct {
	req *Request
}

// Name returns the name of the wrapped request.
func (v *Validated) Name() string {
	return v.req.name
}

// Len returns the number of documents in the wrapped request.
func (v *Validated) Len() int {
	return v.req.Len()
}

// Documents returns deep copies of the wrapped documents in insertion
// order, for inspection and journaling. The wrapped content itself cannot
// be reached or mutated.
func (v *Validated) Documents() []*Document {
	out := make([]*Document, len(v.req.documents))
	for i, doc := range v.req.documents {
		out[i] = doc.clone()
	}
	return out
}

// Wire-format shapes. Field names are fixed and case-sensitive per the
// Interface5 WebServiceInput contract.
type requestWire struct {
	Name      string          `json:"Name"`
	Documents []*documentWire `json:"Documents"`
}

type documentWire struct {
	Name   string  `json:"Name"`
	Fields []Field `json:"Fields"`
	Files  []File  `json:"Files"`
}

// JSON renders the validated request to the Interface5 wire format.
// Documents, fields and files appear in insertion order. A marshaling
// failure is wrapped around ErrSerialize.
func (v *Validated) JSON() ([]byte, error) {
	wire := requestWire{
		Name:      v.req.name,
		Documents: make([]*documentWire, len(v.req.documents)),
	}
	for i, doc := range v.req.documents {
		wire.Documents[i] = &documentWire{
			Name:   doc.name,
			Fields: doc.fields,
			Files:  doc.files,
		}
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return data, nil
}
