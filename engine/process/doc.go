// Package process provides an engine running as a child process.
//
// The child is started once, on first use, and speaks JSON-RPC 2.0 over its
// standard input/output. Every command is sent as a `handle_command` request:
//
//	{"jsonrpc":"2.0","id":1,"method":"handle_command","params":{"command":"nav"}}
//
// and the JSON object returned as the result becomes the engine result. Since the
// child keeps running, it retains its tree position between commands.
//
// The child writes one response per line and keeps stderr silent, output on stderr
// stops the transport. Commands wait for the child without limit unless
// Config.RunTimeoutMs is set.
package process
