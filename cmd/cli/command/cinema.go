package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cinemaCmd = &cobra.Command{
	Use:   "cinema",
	Short: "Cinema management commands",
}

var listCinemasCmd = &cobra.Command{
	Use:   "list",
	Short: "List cinemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		out := cmd.OutOrStdout()

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")
		res, err := newClient().ListCinemas(ctx, page, size)
		if err != nil {
			return fmt.Errorf("failed to get cinemas: %w", err)
		}
		if len(res.Items) == 0 {
			fmt.Fprintln(out, "No cinemas found.")
			return nil
		}
		for _, c := range res.Items {
			fmt.Fprintf(out, "ID: %d | Name: %s | Location: %.6f, %.6f\n", c.ID, c.Name, c.Latitude, c.Longitude)
		}
		totalLine(out, len(res.Items), res.Total)
		return nil
	},
}

var createCinemaCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a cinema at --lat/--lon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")

		ctx, cancel := commandContext(cmd)
		defer cancel()

		id, err := newClient().CreateCinema(ctx, args[0], lat, lon)
		if err != nil {
			return fmt.Errorf("failed to create cinema: %w", err)
		}
		success(cmd.OutOrStdout(), "Cinema %q created with ID %d", args[0], id)
		return nil
	},
}

var deleteCinemaCmd = &cobra.Command{
	Use:   "delete [cinema-id]",
	Short: "Delete a cinema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteCinema(ctx, id); err != nil {
			return fmt.Errorf("failed to delete cinema %d: %w", id, err)
		}
		success(cmd.OutOrStdout(), "Cinema %d deleted", id)
		return nil
	},
}

func init() {
	cinemaCmd.AddCommand(listCinemasCmd, createCinemaCmd, deleteCinemaCmd)

	addPageFlags(listCinemasCmd)
	createCinemaCmd.Flags().Float64("lat", 0, "latitude")
	createCinemaCmd.Flags().Float64("lon", 0, "longitude")
	createCinemaCmd.MarkFlagRequired("lat")
	createCinemaCmd.MarkFlagRequired("lon")
}
