// Package main provides the attrkit CLI for validated, derived attributes.
package main

func main() {
	Execute()
}
