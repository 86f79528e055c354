// Package client talks to the gophstore server on behalf of the CLI.
//
// GRPCClient implements Client over gRPC with the JSON codec from package
// api. It keeps the access/refresh token pair, attaches the access token to
// every non-public call and, when the server answers "token expired",
// refreshes the pair once and retries. Refreshed pairs are reported through
// OnTokensRefreshed so they can be persisted.
//
// gRPC status codes are mapped back onto ErrUnauthorized, ErrUnavailable and
// the sentinels from package common.
//
// InitDatabase opens the local SQLite file and applies the embedded goose
// migrations.
package client
