// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package i5 provides the main interface for submitting Interface5 batches.

The Client ties together serialization, HTTPS transport, structured logging
and the optional delivery journal:

	client := i5.NewClient(&i5.ClientConfig{
	    HTTPSConfig: &transport.HTTPSConfig{InsecureSkipVerify: true},
	})

	endpoint := transport.NewEndpoint("localhost", 43001, "Processor", "Default")
	resp, err := client.Submit(ctx, validated, endpoint)

Submit accepts only a batch.Validated, so an unchecked request can never
reach the wire. SubmitRequest is a convenience that validates first.

The client performs exactly one send attempt per call; retries,
authentication and response interpretation are the caller's concern.
*/
package i5
