package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		log.Fatal(err)
	}
	os.Exit(0)
}

func run() error {
	fmt.Printf("running\n")
	if len(os.Args) > 5 {
		os.Exit(2) // want `os.Exit\(\) should only be called from main function in main package`
	}
	if len(os.Args) > 10 {
		panic("too many arguments") // want `panic\(\) should not be used, return an error instead`
	}
	return nil
}
