// Package api handles incoming HTTP requests for the users and tasks
// resources: routing, request validation, and response formatting. It
// translates HTTP concerns into store operations and maps internal
// errors to the uniform response envelope.
package api
