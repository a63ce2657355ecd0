// Command kundli computes Vedic birth charts from the command line.
package main

import "jyotish/internal/cli"

func main() {
	cli.Execute()
}
