// Command knighttour solves the closed Knight's Tour problem from the
// terminal: one-shot solves, side-by-side success-rate experiments, and an
// interactive prompt loop.
package main

func main() {
	Execute()
}
