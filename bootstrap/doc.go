// Package bootstrap wires the EigenLab application together: logger and
// configuration initialization, API server startup, and graceful shutdown.
//
// main() stays thin; everything that must happen between process start and
// serving traffic lives here so it can be exercised from tests.
package bootstrap
