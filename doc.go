// Package cloudreve is a typed client for the Cloudreve file-storage
// HTTP API. It speaks both API generations: the v3 surface with its
// cookie session and {code, msg, data} envelope, and the v4 surface
// with bearer tokens and cloudreve:// URIs.
//
// New detects the server's generation by probing both ping endpoints
// and routes every unified operation to the matching binding. The
// generation-specific bindings live in the apiv3 and apiv4 packages and
// remain available through V3 and V4 for endpoints the facade does not
// unify.
//
// Every operation performs exactly one HTTP exchange. The client never
// retries, never aggregates pages, and never filters results locally;
// chunked uploads are driven by the caller one chunk call at a time.
package cloudreve
