// Command fredholm compares the numerical methods against the reference
// scenarios and writes the results as CSV (and optionally PNG) files.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
