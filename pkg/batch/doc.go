// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package batch implements Interface5 batch request construction and
validation.

# Building a Request

A Request is assembled incrementally: documents are appended by name, then
fields and file attachments are appended to each document. All append
operations are in-memory and never fail; malformed content surfaces at
validation time, if at all.

	req := batch.New("Invoices")
	idx := req.AddDocument("Invoice-2024-001")

	doc := req.Document(idx)
	doc.AddHeaderField("InvoiceNumber", "2024-001").
	    AddHeaderField("Supplier", "ACME Corp").
	    AddItemField("Quantity", "12", 1).
	    AddItemField("Quantity", "3", 2)
	doc.AddFileBytes("invoice.pdf", pdfBytes)

Document indices returned by AddDocument are stable for the lifetime of the
request; there is no removal operation.

# Validation

Validate checks the structural invariants and, on success, freezes the
request content into a Validated value:

  - the request must contain at least one document
  - the item numbers of each document's fields must form a gapless 1..N
    run once zeros and duplicates are discarded

Validated is the only type the transport accepts and the only type that can
be rendered to the wire format. It has no public constructor other than
(*Request).Validate, so holding a Validated is proof the content was
checked.

# Concurrency

A Request and its documents belong to a single builder session. None of the
types in this package are safe for concurrent mutation.
*/
package batch
