// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation lifecycle (discover sources,
// expand their variants, assemble and write one script set per backend),
// decoupled from any specific entrypoint like a CLI.
package app
