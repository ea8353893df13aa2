// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements HTTPS delivery of Interface5 batch requests.

# Endpoint Resolution

An Interface5 instance is addressed by hostname, port and the two routing
identifiers embedded in the URL path, tenant and scenario:

	endpoint := transport.NewEndpoint("localhost", 43001, "Processor", "Default")
	endpoint.URL() // "https://localhost:43001/api/v1/Input/Default/Processor/Batches"

# TLS Configuration

The client negotiates TLS 1.3 with fallback to TLS 1.2:

	config := transport.DefaultHTTPSConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3

For controlled or test environments the certificate trust check can be
disabled:

	config.InsecureSkipVerify = true

Never disable verification against a production instance.

# Client Usage

	client := transport.NewClient(config)
	resp, err := client.Send(ctx, endpoint, body)

Send returns the raw HTTP response regardless of status code; interpreting
the response, including non-2xx statuses, is the caller's concern. An error
is returned only for request construction and network or TLS level
failures.
*/
package transport
