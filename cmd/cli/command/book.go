package command

import (
	"fmt"
	"text/tabwriter"

	"bookhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

func newBookCmd(opts *options) *cobra.Command {
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Catalog commands",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}

			var req client.CreateBookRequest
			req.Title, _ = cmd.Flags().GetString("title")
			req.Author, _ = cmd.Flags().GetString("author")
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				req.Description = &description
			}
			if cmd.Flags().Changed("year") {
				year, _ := cmd.Flags().GetInt("year")
				req.PublishedYear = &year
			}

			book, err := c.CreateBook(&req)
			if err != nil {
				return fmt.Errorf("create book: %w", err)
			}
			success(cmd, "Book created with ID %d", book.ID)
			return nil
		},
	}
	createCmd.Flags().StringP("title", "t", "", "Book title")
	createCmd.Flags().StringP("author", "a", "", "Book author")
	createCmd.Flags().StringP("description", "d", "", "Short description")
	createCmd.Flags().IntP("year", "y", 0, "Year of publication")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("author")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			books, err := c.ListBooks()
			if err != nil {
				return fmt.Errorf("list books: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tYEAR")
			for _, b := range books {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, optionalInt(b.PublishedYear))
			}
			return w.Flush()
		},
	}

	bookCmd.AddCommand(createCmd, listCmd)
	return bookCmd
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
