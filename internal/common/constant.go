// Package common contains shared constants and sentinel errors used across
// gophstore components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ProductsChangedChannel is the PostgreSQL NOTIFY channel raised by the
// products trigger. The payload is the owner id of the changed row.
const ProductsChangedChannel = "products_changed"
