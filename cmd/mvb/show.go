package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print one loaded article as JSON",
		Long: `Show loads the collection and prints the article whose file name matches
the argument. Only the base name of the argument is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, collection, err := a.load(cmd.Context(), cmd.Name())
			if err != nil {
				return err
			}

			name := filepath.Base(args[0])
			article, ok := collection.Lookup(name)
			if !ok {
				return fmt.Errorf("article %q is not part of the collection", name)
			}

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(article)
		},
	}
}
