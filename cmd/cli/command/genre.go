package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
	Long:  `Manage genres: list them, create new ones and delete them`,
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List genres page by page, or all of them with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		all, _ := cmd.Flags().GetBool("all")
		if all {
			genres, err := newClient().AllGenres(ctx)
			if err != nil {
				return fmt.Errorf("failed to get genres: %w", err)
			}
			for _, g := range genres {
				fmt.Fprintf(out, "ID: %d | Name: %s\n", g.ID, g.Name)
			}
			return nil
		}

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")
		res, err := newClient().ListGenres(ctx, page, size)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}
		if len(res.Items) == 0 {
			fmt.Fprintln(out, "No genres found.")
			return nil
		}
		for _, g := range res.Items {
			fmt.Fprintf(out, "ID: %d | Name: %s\n", g.ID, g.Name)
		}
		totalLine(out, len(res.Items), res.Total)
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		name := strings.Join(args, " ")
		id, err := newClient().CreateGenre(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}
		success(cmd.OutOrStdout(), "Genre %q created with ID %d", name, id)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete [genre-id]",
	Short: "Delete a genre and unlink it from every movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteGenre(ctx, id); err != nil {
			return fmt.Errorf("failed to delete genre %d: %w", id, err)
		}
		success(cmd.OutOrStdout(), "Genre %d deleted", id)
		return nil
	},
}

func parseIDArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "page number")
	cmd.Flags().Int("page-size", 0, "items per page (server default when 0)")
}

func init() {
	genreCmd.AddCommand(listGenresCmd, createGenreCmd, deleteGenreCmd)

	addPageFlags(listGenresCmd)
	listGenresCmd.Flags().Bool("all", false, "list every genre without paging")
}
