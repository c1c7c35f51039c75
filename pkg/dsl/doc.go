/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing scripts.

It allows developers to define scenes using a type-safe, fluent builder pattern
instead of relying on external YAML files. This is particularly useful for generated
scenes, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/offbook/offbook/pkg/dsl"
	)

	func main() {
		scene := dsl.NewScene("Rooftop Scene")

		scene.Participant("ghost", "Ghost")
		scene.Actor("lead", "Lead")

		scene.Say("ghost", "you there?")
		scene.SayAfter("ghost", "pick up.", 2.5)
		scene.Say("lead", "always")

		script, err := scene.Build()
		// ... pass script to offbook.Session.Start(...)
		_ = script
		_ = err
	}
*/
package dsl
