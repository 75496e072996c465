package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWatchlistCmd(opts *options) *cobra.Command {
	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist commands",
	}

	addCmd := &cobra.Command{
		Use:   "add <book_id>",
		Short: "Add a book to your watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseIDArg(args[0], "book")
			if err != nil {
				return err
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			if err := c.AddToWatchlist(bookID); err != nil {
				return fmt.Errorf("add to watchlist: %w", err)
			}
			success(cmd, "Added to watchlist")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show your watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			items, err := c.ListWatchlist()
			if err != nil {
				return fmt.Errorf("list watchlist: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOOK\tTITLE\tADDED")
			for _, item := range items {
				title := "-"
				if item.Book != nil {
					title = item.Book.Title
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", item.BookID, title, item.AddedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <book_id>",
		Short: "Remove a book from your watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseIDArg(args[0], "book")
			if err != nil {
				return err
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			if err := c.RemoveFromWatchlist(bookID); err != nil {
				return fmt.Errorf("remove from watchlist: %w", err)
			}
			success(cmd, "Removed from watchlist")
			return nil
		},
	}

	watchlistCmd.AddCommand(addCmd, listCmd, removeCmd)
	return watchlistCmd
}
