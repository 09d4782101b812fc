// Package errorcode maps HTTP status codes to structured error codes of the
// form "E-REST-<SUBSYSTEM>#<number>".
//
// Only a handful of client statuses get an exact code. Every other 4xx
// resolves to the client bucket (E-REST-CLIENT#499) and every 5xx, as well as
// any status outside the error range, resolves to the server bucket
// (E-REST-SERVER#599). Bucket numbers and the prefix are configurable:
//
//	table := errorcode.NewTable(
//		errorcode.WithServerBucket(590),
//		errorcode.WithEntry(http.StatusTooManyRequests, errorcode.SubsystemClient, 429),
//	)
//	table.Get(503).String() // "E-REST-SERVER#590"
//
// Tables are immutable after construction and safe for concurrent readers.
package errorcode
