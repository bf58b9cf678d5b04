// Package stub holds the pieces shared by every LANton stub service: the
// process lifecycle (bind, serve, shut down on signal), per-request logging,
// JSON response writing and the timestamp clock.
//
// A stub moves through three states. Starting binds the listener and prints
// the start banner and PID. Serving handles requests until the context is
// cancelled. Stopped is reached either from Serving after a graceful shutdown,
// or directly from Starting when the bind fails; the latter surfaces as a
// *StartupError.
package stub
