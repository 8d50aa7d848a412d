// Package rpc holds the metadata keys shared by the feedsync server and
// client on top of the generated API in api/proto.
package rpc

// Metadata keys set by the server.
const (
	// ErrorKindTrailer carries the kind of a failed call.
	ErrorKindTrailer = "x-error-kind"
	// PostIDHeader carries the id of a post persisted by a failed CreatePost.
	PostIDHeader = "x-post-id"
)
