// Command embedlog relays lines from standard input through a buffered
// logging engine, demonstrating staged delivery against a console or
// rotating file sink.
package main

func main() {
	Execute()
}
