package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutricancer/nutricancer/internal/domain/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect recipe catalogs",
	}

	var listFile string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Builtin()
			if listFile != "" {
				var err error
				if c, err = catalog.LoadFile(listFile); err != nil {
					return err
				}
			}
			listRecipes(cmd.OutOrStdout(), c)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listFile, "file", "", "Catalog JSON file (default: built-in)")
	cmd.AddCommand(listCmd)

	var validateFile string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file before pointing CATALOG_FILE at it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(validateFile)
			if err != nil {
				return err
			}
			recipes, advice := c.Len()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d recipe(s), %d advice item(s), OK\n", validateFile, recipes, advice)
			return nil
		},
	}
	validateCmd.Flags().StringVar(&validateFile, "file", "", "Catalog JSON file")
	_ = validateCmd.MarkFlagRequired("file")
	cmd.AddCommand(validateCmd)

	return cmd
}

func listRecipes(w io.Writer, c *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKCAL\tCANCER TYPES\tSYMPTOMS")
	for _, r := range c.Recipes() {
		cancers := make([]string, 0, len(r.SuitableFor.CancerTypes))
		for _, ct := range r.SuitableFor.CancerTypes {
			cancers = append(cancers, string(ct))
		}
		symptoms := make([]string, 0, len(r.SuitableFor.Symptoms))
		for _, s := range r.SuitableFor.Symptoms {
			symptoms = append(symptoms, string(s))
		}
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%s\t%s\n", r.ID, r.Title, r.NutritionFacts.Calories, strings.Join(cancers, ","), strings.Join(symptoms, ","))
	}
	tw.Flush()
}
