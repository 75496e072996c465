package command

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"bookhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

func newReviewCmd(opts *options) *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Review commands",
	}

	createCmd := &cobra.Command{
		Use:   "create <book_id>",
		Short: "Review a book",
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

			review, err := c.CreateReview(bookID, reviewRequestFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("create review: %w", err)
			}
			success(cmd, "Review created with ID %d", review.ID)
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <review_id>",
		Short: "Replace the rating and text of one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := parseIDArg(args[0], "review")
			if err != nil {
				return err
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}

			if _, err := c.EditReview(reviewID, reviewRequestFromFlags(cmd)); err != nil {
				return fmt.Errorf("edit review: %w", err)
			}
			success(cmd, "Review updated")
			return nil
		},
	}

	for _, c := range []*cobra.Command{createCmd, editCmd} {
		c.Flags().IntP("rating", "r", 0, "Rating")
		c.Flags().StringP("text", "t", "", "Review text")
		c.MarkFlagRequired("rating")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			reviews, err := c.ListReviews()
			if err != nil {
				return fmt.Errorf("list reviews: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBOOK\tRATING\tTEXT")
			for _, r := range reviews {
				text := "-"
				if r.ReviewText != nil {
					text = *r.ReviewText
				}
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", r.ID, r.BookID, r.Rating, text)
			}
			return w.Flush()
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <review_id>",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := parseIDArg(args[0], "review")
			if err != nil {
				return err
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			if err := c.DeleteReview(reviewID); err != nil {
				return fmt.Errorf("delete review: %w", err)
			}
			success(cmd, "Review deleted")
			return nil
		},
	}

	reviewCmd.AddCommand(createCmd, listCmd, editCmd, deleteCmd)
	return reviewCmd
}

func reviewRequestFromFlags(cmd *cobra.Command) *client.ReviewRequest {
	req := &client.ReviewRequest{}
	req.Rating, _ = cmd.Flags().GetInt("rating")
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		req.ReviewText = &text
	}
	return req
}

func parseIDArg(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
