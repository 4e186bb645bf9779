// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the client
// front ends (the cobra CLI and the terminal UI).
//
// Engine and transport errors are wrapped several layers deep; [Describe]
// turns them into one short sentence that tells the user what to do next.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-sync/internal/service"
)

const (
	// MsgNoServerConfigured is shown when an operation needs a server url
	// that has not been set yet.
	MsgNoServerConfigured = "no server configured, run `pass-sync server set --url <url>` first"

	// MsgServerUnreachable is shown on network failures and timeouts.
	MsgServerUnreachable = "server is unreachable, check the url and your connection"

	// MsgServerRejected is shown when the server answered with an error
	// status other than the ones handled by the engine.
	MsgServerRejected = "server rejected the request"

	// MsgIncompatibleServer is shown when the server reports a version the
	// client cannot talk to.
	MsgIncompatibleServer = "server version is not compatible with this client"

	// MsgSyncDisabled is shown for domains with both categories switched off.
	MsgSyncDisabled = "sync is disabled for this domain, enable cookies or storage first"

	// MsgDecodeFailure is shown when a payload cannot be decrypted or parsed.
	MsgDecodeFailure = "cannot decode server data, check the encryption key"

	// MsgHostFailure is shown when the host profile could not be read or
	// written.
	MsgHostFailure = "cannot access the host profile"

	// MsgVersionNotFound is shown when a version id is unknown.
	MsgVersionNotFound = "version not found"

	// MsgNotInitialized is shown when the engine has not finished Init.
	MsgNotInitialized = "engine is not initialized"

	// MsgCancelled is shown when the user interrupted an operation.
	MsgCancelled = "operation cancelled"
)

var messages = []struct {
	target error
	msg    string
}{
	{service.ErrNoServerConfigured, MsgNoServerConfigured},
	{service.ErrServerUnreachable, MsgServerUnreachable},
	{service.ErrIncompatibleServer, MsgIncompatibleServer},
	{service.ErrSyncDisabledForDomain, MsgSyncDisabled},
	{service.ErrDecodeFailure, MsgDecodeFailure},
	{service.ErrHostCollaborator, MsgHostFailure},
	{service.ErrVersionNotFound, MsgVersionNotFound},
	{service.ErrEngineNotInitialized, MsgNotInitialized},
	{service.ErrServerRejected, MsgServerRejected},
	{context.Canceled, MsgCancelled},
}

// Describe returns a user-facing message for err. Errors without a known
// cause are returned verbatim.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return err.Error()
}
