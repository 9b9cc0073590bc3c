package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var actorCmd = &cobra.Command{
	Use:   "actor",
	Short: "Actor lookup and management commands",
}

var listActorsCmd = &cobra.Command{
	Use:   "list",
	Short: "List actors",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")
		res, err := newClient().ListActors(ctx, page, size)
		if err != nil {
			return fmt.Errorf("failed to get actors: %w", err)
		}
		if len(res.Items) == 0 {
			fmt.Fprintln(out, "No actors found.")
			return nil
		}
		for _, a := range res.Items {
			fmt.Fprintf(out, "ID: %d | Name: %s | Born: %s\n", a.ID, a.Name, a.BirthDate.Format("2006-01-02"))
		}
		totalLine(out, len(res.Items), res.Total)
		return nil
	},
}

var searchActorsCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Find actors whose name contains the text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		actors, err := newClient().SearchActors(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(actors) == 0 {
			fmt.Fprintln(out, "No actors found.")
			return nil
		}
		for _, a := range actors {
			fmt.Fprintf(out, "ID: %d | Name: %s\n", a.ID, a.Name)
		}
		return nil
	},
}

var deleteActorCmd = &cobra.Command{
	Use:   "delete [actor-id]",
	Short: "Delete an actor and remove them from every cast",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteActor(ctx, id); err != nil {
			return fmt.Errorf("failed to delete actor %d: %w", id, err)
		}
		success(cmd.OutOrStdout(), "Actor %d deleted", id)
		return nil
	},
}

func init() {
	actorCmd.AddCommand(listActorsCmd, searchActorsCmd, deleteActorCmd)
	addPageFlags(listActorsCmd)
}
