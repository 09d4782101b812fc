// Package errmsg builds the JSON error envelope returned to API clients:
//
//	{
//	  "id": "6fd2f2b3-fc94-44d6-8f46-81529a40af19",
//	  "status": 503,
//	  "code": "E-REST-SERVER#599",
//	  "message": "An exception occurred on the server side."
//	}
//
// The id is a fresh uuid v4 per error, the code comes from an errorcode.Table
// and the message is resolved from a locale-aware catalog keyed by the code.
// Resolution never fails; DefaultMessage is used when nothing is found.
package errmsg
