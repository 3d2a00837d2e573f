package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `analyzer checks for forbidden function calls

This analyzer reports:
1. Usage of panic() function
2. Calls to log.Fatal*() or os.Exit() outside main function of main package
3. Calls to fmt.Print*() outside main package, library code logs through zap`

var Analyzer = &analysis.Analyzer{
	Name:     "receiptlint",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		callExpr := node.(*ast.CallExpr)

		if isBuiltinPanic(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "panic() should not be used, return an error instead")
			return
		}

		pkgPath, funcName, ok := calledFunc(pass, callExpr)
		if !ok {
			return
		}

		switch {
		case pkgPath == "log" && strings.HasPrefix(funcName, "Fatal"):
			if !isInMainFunction(pass, node) {
				pass.Reportf(callExpr.Pos(), "log.%s() should only be called from main function in main package", funcName)
			}
		case pkgPath == "os" && funcName == "Exit":
			if !isInMainFunction(pass, node) {
				pass.Reportf(callExpr.Pos(), "os.Exit() should only be called from main function in main package")
			}
		case pkgPath == "fmt" && strings.HasPrefix(funcName, "Print"):
			if pass.Pkg.Name() != "main" {
				pass.Reportf(callExpr.Pos(), "fmt.%s() should not be used outside main package, use the logger", funcName)
			}
		}
	})

	return nil, nil
}

func isBuiltinPanic(pass *analysis.Pass, call *ast.CallExpr) bool {
	ident, ok := call.Fun.(*ast.Ident)
	if !ok || ident.Name != "panic" {
		return false
	}
	_, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return builtin
}

// calledFunc путь пакета и имя вызываемой пакетной функции
func calledFunc(pass *analysis.Pass, call *ast.CallExpr) (string, string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", "", false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", "", false
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return "", "", false
	}
	return fn.Pkg().Path(), fn.Name(), true
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == "main" && fn.Recv == nil && fn.Body != nil {
				if node.Pos() >= fn.Body.Lbrace && node.Pos() <= fn.Body.Rbrace {
					return true
				}
			}
		}
	}
	return false
}
