/*
Package router defines the route table using Go 1.22+ ServeMux method
patterns.

All /api routes get request logging via middleware.WithLogging. The
/health endpoint returns service status without logging noise.
*/
package router
