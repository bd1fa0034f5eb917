package fastbreak

import (
	"hash/fnv"
	"net/url"
	"strconv"
)

// Endpoint is the contract the engine consumes from the descriptor catalog.
// An endpoint contributes a stable identity (path + parameters) and a
// decoding contract from the raw wire payload to its typed response; the
// engine knows nothing else about it.
//
// Implementations live in the endpoints package but any type satisfying the
// interface works.
type Endpoint[T any] interface {
	// Path returns the URL path segment, e.g. "scoreboardv2".
	Path() string
	// Params returns the query parameters for this request.
	Params() url.Values
	// Decode maps a raw response payload into the typed result. It must
	// fail when the payload does not match the expected structure.
	Decode(data []byte) (T, error)
}

// requestKey derives the cache identity for a request: a stable hash over
// the path and the sorted parameter key-value pairs. Two descriptor
// instances with identical path and parameters always hash identically.
func requestKey(path string, params url.Values) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	h.Write([]byte{'?'})
	// url.Values.Encode sorts by key, giving a canonical form.
	h.Write([]byte(params.Encode()))
	return path + ":" + strconv.FormatUint(h.Sum64(), 16)
}
