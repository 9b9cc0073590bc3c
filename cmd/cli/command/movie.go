package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moviehub/cmd/cli/command/client"
	"moviehub/internal/microservices/http-api/dto"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie commands",
	Long:  `Browse the landing page, filter and inspect movies, create and delete them`,
}

var landingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Show upcoming releases and movies in theaters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		page, err := newClient().Landing(ctx)
		if err != nil {
			return fmt.Errorf("failed to get landing page: %w", err)
		}

		fmt.Fprintln(out, "Upcoming releases:")
		printMovies(out, page.UpcomingReleases)
		fmt.Fprintln(out, "\nIn theaters:")
		printMovies(out, page.InTheaters)
		return nil
	},
}

var filterMoviesCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter movies by title, genre, theaters and release",
	RunE: func(cmd *cobra.Command, args []string) error {
		var f dto.MovieFilterDTO
		f.Title, _ = cmd.Flags().GetString("title")
		f.InTheaters, _ = cmd.Flags().GetBool("in-theaters")
		f.UpcomingReleases, _ = cmd.Flags().GetBool("upcoming")
		f.GenreID, _ = cmd.Flags().GetInt64("genre")
		f.Page, _ = cmd.Flags().GetInt("page")
		f.PageSize, _ = cmd.Flags().GetInt("page-size")

		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		res, err := newClient().FilterMovies(ctx, f)
		if err != nil {
			return fmt.Errorf("filter failed: %w", err)
		}
		printMovies(out, res.Items)
		totalLine(out, len(res.Items), res.Total)
		return nil
	},
}

var getMovieCmd = &cobra.Command{
	Use:   "get [movie-id]",
	Short: "Show one movie with its genres, cinemas and cast",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		m, err := newClient().GetMovie(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get movie %d: %w", id, err)
		}
		printMovie(cmd.OutOrStdout(), *m)
		return nil
	},
}

var createMovieCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a movie",
	Long: `Create a movie. Cast members are given as id:character pairs in billing
order, e.g. --actor 10:Peter --actor 11:MJ`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := client.MovieForm{Title: strings.Join(args, " ")}
		form.Summary, _ = cmd.Flags().GetString("summary")
		form.ReleaseDate, _ = cmd.Flags().GetString("release-date")
		form.InTheaters, _ = cmd.Flags().GetBool("in-theaters")
		form.GenreIDs, _ = cmd.Flags().GetInt64Slice("genre")
		form.CinemaIDs, _ = cmd.Flags().GetInt64Slice("cinema")
		form.PosterPath, _ = cmd.Flags().GetString("poster")

		cast, _ := cmd.Flags().GetStringArray("actor")
		actors, err := parseCast(cast)
		if err != nil {
			return err
		}
		form.Actors = actors

		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := newClient().CreateMovie(ctx, form)
		if err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}
		success(cmd.OutOrStdout(), "Movie %q created with ID %d", form.Title, id)
		return nil
	},
}

var deleteMovieCmd = &cobra.Command{
	Use:   "delete [movie-id]",
	Short: "Delete a movie and its poster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteMovie(ctx, id); err != nil {
			return fmt.Errorf("failed to delete movie %d: %w", id, err)
		}
		success(cmd.OutOrStdout(), "Movie %d deleted", id)
		return nil
	},
}

// parseCast reads "id:character" pairs; the character part is optional.
func parseCast(pairs []string) ([]dto.MovieActorCreationDTO, error) {
	out := make([]dto.MovieActorCreationDTO, 0, len(pairs))
	for _, p := range pairs {
		idPart, character, _ := strings.Cut(p, ":")
		id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid actor %q, want id:character", p)
		}
		out = append(out, dto.MovieActorCreationDTO{ID: id, Character: strings.TrimSpace(character)})
	}
	return out, nil
}

func printMovies(w io.Writer, movies []dto.MovieDTO) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, m := range movies {
		fmt.Fprintf(w, "  ID: %d | %s | %s\n", m.ID, m.Title, m.ReleaseDate.Format("2006-01-02"))
	}
}

func printMovie(w io.Writer, m dto.MovieDTO) {
	fmt.Fprintf(w, "ID: %d\n", m.ID)
	fmt.Fprintf(w, "Title: %s\n", m.Title)
	fmt.Fprintf(w, "Release date: %s\n", m.ReleaseDate.Format("2006-01-02"))
	fmt.Fprintf(w, "In theaters: %t\n", m.InTheaters)
	if m.Poster != "" {
		fmt.Fprintf(w, "Poster: %s\n", m.Poster)
	}
	if m.Summary != "" {
		fmt.Fprintf(w, "Summary: %s\n", m.Summary)
	}

	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	fmt.Fprintf(w, "Genres: %s\n", strings.Join(genres, ", "))

	for _, c := range m.Cinemas {
		fmt.Fprintf(w, "Cinema: %s (%.6f, %.6f)\n", c.Name, c.Latitude, c.Longitude)
	}
	for _, a := range m.Actors {
		fmt.Fprintf(w, "  %d. %s as %s\n", a.Order+1, a.Name, a.Character)
	}
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func init() {
	movieCmd.AddCommand(landingCmd, filterMoviesCmd, getMovieCmd, createMovieCmd, deleteMovieCmd)

	filterMoviesCmd.Flags().String("title", "", "title contains")
	filterMoviesCmd.Flags().Bool("in-theaters", false, "only movies in theaters")
	filterMoviesCmd.Flags().Bool("upcoming", false, "only movies released after today")
	filterMoviesCmd.Flags().Int64("genre", 0, "genre id")
	addPageFlags(filterMoviesCmd)

	createMovieCmd.Flags().String("summary", "", "plot summary")
	createMovieCmd.Flags().String("release-date", "", "release date, YYYY-MM-DD")
	createMovieCmd.Flags().Bool("in-theaters", false, "currently in theaters")
	createMovieCmd.Flags().Int64Slice("genre", nil, "genre ids")
	createMovieCmd.Flags().Int64Slice("cinema", nil, "cinema ids")
	createMovieCmd.Flags().StringArray("actor", nil, "cast member as id:character, in billing order")
	createMovieCmd.Flags().String("poster", "", "path to a poster image")
	createMovieCmd.MarkFlagRequired("release-date")
}
