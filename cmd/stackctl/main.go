// Command stackctl drives a manually managed stack from the command line.
package main

func main() {
	execute()
}
