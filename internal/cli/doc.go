// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It turns
// flags into a Config, produces a graph from a file, the random generator or
// an interactive session, and prints solver results.
package cli
