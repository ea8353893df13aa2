// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package i5req implements a client for the Interface5 batch ingestion API
(WebServiceInput).

# Overview

i5Req lets a caller assemble a structured batch request (a named request
containing named documents, each holding key/value fields and file
attachments), validate its structural invariants, serialize it to the JSON
wire format, and deliver it over HTTPS to a configured Interface5 endpoint.

# Package Structure

The library is organized into the following packages:

	github.com/CondeSun/i5Req/pkg/batch     - Request construction and validation
	github.com/CondeSun/i5Req/pkg/transport - Endpoint resolution and HTTPS delivery
	github.com/CondeSun/i5Req/pkg/i5        - High-level submission client

# Quick Start

To build and send a batch request:

	import (
	    "github.com/CondeSun/i5Req/pkg/batch"
	    "github.com/CondeSun/i5Req/pkg/i5"
	    "github.com/CondeSun/i5Req/pkg/transport"
	)

	req := batch.New("Invoices")
	idx := req.AddDocument("Invoice-2024-001")
	req.Document(idx).
	    AddHeaderField("InvoiceNumber", "2024-001").
	    AddItemField("Quantity", "12", 1)

	validated, err := req.Validate()
	if err != nil {
	    // request violates a structural invariant
	}

	client := i5.NewClient(nil)
	endpoint := transport.NewEndpoint("localhost", 43001, "Processor", "Default")
	resp, err := client.Submit(ctx, validated, endpoint)

Only a validated request can be serialized and transmitted: the
batch.Validated type has no public constructor other than
(*batch.Request).Validate.

# Status

The library covers the WebServiceInput batch endpoint only. Response bodies
are returned verbatim and never interpreted; retries, authentication and
response parsing are the caller's concern.
*/
package i5req
