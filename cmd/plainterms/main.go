// Package main provides the entry point for the plainterms CLI.
//
// plainterms serves a directory of plain-language terms-of-service
// summaries, or exports it as a static site.
//
// Usage:
//
//	plainterms serve
//	plainterms export --out dist
//	plainterms routes
//
// See --help for all available options.
package main

func main() {
	Execute()
}
