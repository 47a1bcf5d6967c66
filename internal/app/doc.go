// Package app provides the entry points behind the CLI commands.
// It wires the Redis store, proxy pool, clients and services together and
// translates command arguments into service calls.
package app
