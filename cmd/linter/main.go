// Command linter запускает проверки запрещенных вызовов:
//
//	go run ./cmd/linter ./...
package main

import "golang.org/x/tools/go/analysis/singlechecker"

func main() {
	singlechecker.Main(Analyzer)
}
