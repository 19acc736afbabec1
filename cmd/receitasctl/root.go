package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/db"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/search"
	"github.com/windoze95/receitas-api/internal/seed"
	"github.com/windoze95/receitas-api/internal/service"
	"gorm.io/gorm"
)

type rootOptions struct {
	envPath     string
	databaseURL string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "receitasctl",
		Short:        "Manage and query the recipe corpus",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.envPath, "env", ".env", "Path to .env file")
	rootCmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "Override DATABASE_URL")

	rootCmd.AddCommand(newSeedCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newSurpriseCmd(opts))
	return rootCmd
}

// openDatabase loads config and connects, migrating the schema on the way.
func (o *rootOptions) openDatabase() (*config.Config, *gorm.DB, func(), error) {
	cfg, err := config.LoadConfig(o.envPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.databaseURL != "" {
		cfg.EnvVars.DatabaseUrl = o.databaseURL
	}

	database, err := db.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, database, func() { sqlDB.Close() }, nil
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load recipes from a YAML corpus file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, closeDB, err := opts.openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := seed.Seed(cmd.Context(), repository.NewRecipeRepository(database), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d receitas importadas de %s\n", n, file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML corpus file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		ingredients []string
		page        int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recipes containing every given ingredient",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(search.NormalizeQuery(ingredients)) == 0 {
				return fmt.Errorf("at least one non-blank ingredient is required")
			}

			cfg, database, closeDB, err := opts.openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			svc := service.NewSearchService(cfg, repository.NewRecipeRepository(database))
			result, err := svc.SearchRecipes(cmd.Context(), ingredients, page)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&ingredients, "ingredientes", "i", nil, "Comma-separated ingredients")
	cmd.Flags().IntVarP(&page, "pagina", "p", 1, "Page number")
	_ = cmd.MarkFlagRequired("ingredientes")
	return cmd
}

func newSurpriseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "surpresa",
		Short: "Print one random recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, closeDB, err := opts.openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			recipe, err := service.NewRecipeService(cfg, repository.NewRecipeRepository(database)).GetSurpriseRecipe()
			if err != nil {
				return err
			}
			renderRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
}

func renderResult(w io.Writer, result *search.Result) {
	fmt.Fprintf(w, "Página %d, %d de %d receitas\n", result.Number, result.Shown, result.Total)

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Title,
			item.Rating,
			item.ReviewCount,
			item.PrepTime,
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Título", "Nota", "Avaliações", "Tempo"})
	table.Bulk(rows)
	table.Render()

	if result.HasMore {
		fmt.Fprintf(w, "Mais resultados: --pagina %d\n", result.Number+1)
	}
}

func renderRecipe(w io.Writer, recipe *service.RecipeDetail) {
	fmt.Fprintf(w, "%s (nota %s, %s)\n", recipe.Title, recipe.Rating, recipe.ReviewCount)
	if recipe.Description != "" {
		fmt.Fprintln(w, recipe.Description)
	}
	fmt.Fprintln(w, "\nIngredientes:")
	for _, item := range recipe.Ingredients {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	fmt.Fprintln(w, "\nModo de preparo:")
	for i, step := range recipe.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
