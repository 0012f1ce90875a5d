// jsonctl is a command line tool for validating, formatting and querying
// JSON documents with the jsonkit arena codec.
package main

func main() {
	execute()
}
