// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/core/category"
	pgstore "github.com/taibuivan/catalog/internal/platform/postgres"
	"github.com/taibuivan/catalog/pkg/slice"
)

func newCategoriesCommand(opts *settings, logger *slog.Logger) *cobra.Command {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect the category tree",
	}

	var asJSON bool
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the active category forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, closeFn, err := openCategoryService(cmd, opts, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			forest, err := service.GetTree(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(forest)
			}
			renderTree(cmd.OutOrStdout(), forest)
			return nil
		},
	}
	treeCmd.Flags().BoolVar(&asJSON, "json", false, "Print the forest as JSON")

	descendantsCmd := &cobra.Command{
		Use:   "descendants <id>",
		Short: "Print a category id followed by its active descendants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			service, closeFn, err := openCategoryService(cmd, opts, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			ids, err := service.DescendantIDs(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), joinIDs(ids))
			return nil
		},
	}

	categoriesCmd.AddCommand(treeCmd, descendantsCmd)
	return categoriesCmd
}

// openCategoryService connects to PostgreSQL and returns a category service
// together with the function that releases the pool.
func openCategoryService(cmd *cobra.Command, opts *settings, logger *slog.Logger) (*category.Service, func(), error) {
	if opts.DatabaseURL == "" {
		return nil, nil, errMissingDatabaseURL
	}

	pool, err := pgstore.NewPool(cmd.Context(), opts.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}

	return category.NewService(category.NewPostgresRepository(pool), logger), pool.Close, nil
}

// renderTree writes one line per node, indented two spaces per level.
func renderTree(writer io.Writer, forest []*category.TreeNode) {
	var walk func(nodes []*category.TreeNode, depth int)
	walk = func(nodes []*category.TreeNode, depth int) {
		for _, node := range nodes {
			fmt.Fprintf(writer, "%s%s (#%d)\n", strings.Repeat("  ", depth), node.Name, node.ID)
			walk(node.Children, depth+1)
		}
	}
	walk(forest, 0)
}

func joinIDs(ids []int) string {
	return strings.Join(slice.Map(ids, strconv.Itoa), " ")
}
