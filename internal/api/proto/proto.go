// Package proto embeds the .proto contract the messages in internal/api
// follow.
package proto

import _ "embed"

//go:embed gophstore.proto
var Contract string
