package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fungone76-ux/luna-chat-v1/internal/lora"
)

// catalogCmd groups catalog maintenance commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate modifier catalogs",
}

// catalogValidateCmd checks a catalog file for configuration errors
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog YAML file",
	Long: `Loads a catalog file and runs the same validation the engine applies at
startup: weights in range, known categories, non-empty keywords, resolvable
fallbacks, and at least one usable quota. Without an argument the built-in
catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

// catalogListCmd prints the entries of a catalog
var catalogListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the entries of a catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogList,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
}

func resolveCatalogArg(args []string) (*lora.Catalog, string, error) {
	if len(args) == 0 {
		return lora.Default(), "built-in", nil
	}
	cat, err := lora.Load(args[0])
	if err != nil {
		return nil, "", err
	}
	return cat, args[0], nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, source, err := resolveCatalogArg(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if err := cat.Validate(); err != nil {
			return err
		}
	}
	fmt.Printf("%s catalog %s: %d entries, %d fallbacks, cap %d\n",
		yesStyle.Render("ok"), source, len(cat.Entries), len(cat.Fallbacks), cat.MaxTotal)
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, source, err := resolveCatalogArg(args)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Catalog: " + source))
	for _, e := range cat.Entries {
		fmt.Printf("  %-45s %-8s weight=%.2f keywords=%d\n",
			e.Name, e.Category, e.Weight, len(e.Keywords))
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Fallbacks"))
	for _, f := range cat.Fallbacks {
		fmt.Printf("  %-45s weight=%.2f\n", f.Name, f.Weight)
	}
	return nil
}
