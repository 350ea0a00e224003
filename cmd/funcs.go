package cmd

import (
	"fmt"

	"github.com/an-ivanov/nansat/internal/recipe"
	"github.com/an-ivanov/nansat/pixfunc"
	"github.com/spf13/cobra"
)

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the pixel functions and built-in recipes",
	Args:  cobra.NoArgs,
	RunE:  runFuncs,
}

func init() {
	rootCmd.AddCommand(funcsCmd)
}

func runFuncs(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println("  Pixel functions:")
	fmt.Printf("    %-28s %-6s %-7s %s\n", "NAME", "SRCS", "COMPLEX", "DESCRIPTION")
	for _, e := range pixfunc.Entries() {
		cplx := "yes"
		if e.RealOnly {
			cplx = "no"
		}
		fmt.Printf("    %-28s %-6s %-7s %s\n", e.Name, e.Arity, cplx, e.Description)
	}
	fmt.Println()

	fmt.Println("  Data types:")
	for t := pixfunc.Byte; t <= pixfunc.CFloat64; t++ {
		fmt.Printf("    %-9s %2d bytes  %s\n", t, t.Size(), typeKind(t))
	}
	fmt.Println()

	fmt.Println("  Recipes:")
	for _, name := range recipe.Names() {
		r, _ := recipe.Get(name)
		fmt.Printf("    %s\n", name)
		for _, b := range r.Bands {
			fmt.Printf("      %-20s = %s%v  %s\n", b.Name, b.Func, b.Sources, b.OutputType())
		}
	}
	fmt.Println()
	return nil
}

// typeKind describes the sample representation of t.
func typeKind(t pixfunc.DataType) string {
	var kind string
	switch {
	case t.IsFloat():
		kind = "float"
	case t.IsSigned():
		kind = "signed int"
	default:
		kind = "unsigned int"
	}
	if t.IsComplex() {
		return "complex " + kind
	}
	return kind
}
