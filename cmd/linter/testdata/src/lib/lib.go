package lib

import (
	"fmt"
	"log"
	"os"
)

type printer struct{}

func (printer) Println(string) {}

func Fail(err error) {
	if err == nil {
		panic("nil error") // want `panic\(\) should not be used, return an error instead`
	}
	log.Fatal(err)          // want `log.Fatal\(\) should only be called from main function in main package`
	log.Fatalf("%v", err)   // want `log.Fatalf\(\) should only be called from main function in main package`
	os.Exit(1)              // want `os.Exit\(\) should only be called from main function in main package`
	fmt.Println(err)        // want `fmt.Println\(\) should not be used outside main package, use the logger`
	fmt.Printf("%v\n", err) // want `fmt.Printf\(\) should not be used outside main package, use the logger`
}

func Allowed(err error) string {
	fmt.Fprintln(os.Stderr, err)
	printer{}.Println("method calls are fine")
	return fmt.Sprintf("%v", err)
}
