// Package cli is responsible for parsing command-line arguments and validating
// user input. It translates CLI flags into the application's configuration.
package cli
