// Package api exposes the catalog over HTTP with chi.
//
// Every response uses the JSONResponse envelope. Guard failures become
// 400 responses whose error.details map each rejected parameter to its
// messages:
//
//	{
//	  "code": "validation_error",
//	  "error": {
//	    "code": "validation_error",
//	    "message": "request validation failed",
//	    "details": {"name": ["value cannot be null or whitespace"]}
//	  }
//	}
//
// Unknown ids answer 404 and malformed bodies 400 "bad_request". Every
// failed request is logged with its cause before the response is written.
package api
