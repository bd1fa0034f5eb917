// Package endpoints holds request descriptors for the NBA Stats API. Each
// descriptor is a small value type carrying an endpoint path and its query
// parameters, plus a Decode method mapping the raw payload into a typed
// response. Descriptors are consumed by the fastbreak engine through its
// generic Endpoint interface; they contain no network logic of their own.
//
// Most endpoints answer in the API's tabular resultSets format (named
// tables of headers + row arrays); resultset.go provides the shared
// decoding for it.
package endpoints
