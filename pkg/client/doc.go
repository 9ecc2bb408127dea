// Package client provides a Go SDK for the Document Management API.
//
// The API is an OTP-authenticated document store: users log in with a
// mobile number plus one-time code, upload categorized documents with
// metadata and tags, and search previously stored documents. This SDK
// covers the full external contract: OTP issuance and validation, the tag
// catalog, filtered search, multipart upload, and raw file retrieval.
//
// # Quick Start
//
// Create a client and authenticate:
//
//	c := client.New()
//	if err := c.SendOTP(ctx, "9999999999"); err != nil { ... }
//	id, err := c.VerifyOTP(ctx, "9999999999", "1234")
//
// Use custom configuration:
//
//	c := client.New(
//	    client.WithBaseURL("https://example.com/api/documentManagement"),
//	    client.WithHTTPClient(customHTTPClient),
//	)
//
// # Authentication
//
// Every call past the OTP pair requires the token from VerifyOTP, passed as
// a plain "token" request header. Uploads additionally send "user_id". The
// server issues no renewals; when the token expires callers must log in
// again.
//
// # Error Handling
//
// The API wraps every response in a {status, data|message} envelope. This
// SDK decodes the envelope internally: a successful call returns the typed
// payload, and a status:false envelope or non-2xx response returns an
// *APIError carrying the server-supplied message. Calls never retry; a
// single failed attempt surfaces immediately.
//
// # Search Payloads
//
// SearchDocuments expects a fully populated SearchQuery: the server wants a
// uniformly shaped filter object where unused fields are empty strings and
// tags is either empty or a single {tag_name} element. The searchflow
// package builds these from user-entered filter fields.
package client
