// Package script reads operation scripts, dispatches each command to the
// bit-vector or tree core, and writes query results to a sink in request
// order. It is the thin glue between the file-based command format and
// the library surface; all computation and all error semantics live in
// the cores.
//
// A bv script starts with a line holding a count n, followed by n lines
// of '0'/'1' appended in order, followed by commands. A bp script holds
// commands only and operates on a tree that starts as a single root.
package script
