// Command honohub serves a collection admin backend and generates the
// admin panel's build entries.
package main

func main() {
	Execute()
}
