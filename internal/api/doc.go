// Package api handles incoming HTTP requests, request validation, and
// response formatting for the vocabulary training endpoints. It adapts
// external clients to the internal auth, training and vocab services.
package api
