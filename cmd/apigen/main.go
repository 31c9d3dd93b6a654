// Command apigen generates the guest filesystem API's C headers,
// implementations, daemon dispatch stubs, shell commands, manual pages, and
// OCaml/Perl host bindings from a single in-memory call table.
package main

func main() {
	execute()
}
