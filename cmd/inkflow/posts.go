package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/store"
)

func postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse posts and toggle their publication",
	}

	cmd.AddCommand(latestPostsCmd())
	cmd.AddCommand(listUserPostsCmd())
	cmd.AddCommand(setPostStatusCmd("publish", "Publish a draft post", false))
	cmd.AddCommand(setPostStatusCmd("unpublish", "Turn a published post back into a draft", true))

	return cmd
}

func postStatus(p model.Post) string {
	if p.Published {
		return "published"
	}
	return "draft"
}

func latestPostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent posts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchLatestPosts(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch latest posts: %w", err)
			}

			posts := s.LatestPosts()
			if len(posts) == 0 {
				fmt.Println("No posts found.")
				return nil
			}

			printPosts(posts)
			return nil
		},
	}
}

func listUserPostsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list <editor-id>",
		Short: "List one editor's posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editorID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid editor id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			if err := s.FetchUserPosts(cmd.Context(), editorID, page); err != nil {
				return fmt.Errorf("failed to fetch posts for editor %d: %w", editorID, err)
			}

			_, result := s.UserPosts()
			if len(result.Content) == 0 {
				fmt.Println("No posts found.")
				return nil
			}

			printPosts(result.Content)
			fmt.Printf("\npage %d/%d, %d posts total\n", result.Number+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")

	return cmd
}

func printPosts(posts []model.Post) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "ID\tTitle\tEditor\tUpdated\tStatus")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 6),
		strings.Repeat("-", 40),
		strings.Repeat("-", 20),
		strings.Repeat("-", 10),
		strings.Repeat("-", 9))
	for _, p := range posts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Editor.Name, p.UpdatedAt.Format(format.DisplayDate), postStatus(p))
	}
}

// setPostStatusCmd builds the publish and unpublish sub-commands;
// fromPublished is the state the post must currently be in.
func setPostStatusCmd(use, short string, fromPublished bool) *cobra.Command {
	var editorID int64

	cmd := &cobra.Command{
		Use:   use + " <post-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			s, _, err := initStore()
			if err != nil {
				return err
			}

			post, err := findPost(cmd, s, editorID, postID)
			if err != nil {
				return err
			}
			if post.Published != fromPublished {
				fmt.Printf("post %d is already %s\n", postID, postStatus(*post))
				return nil
			}

			if err := s.TogglePostStatus(cmd.Context(), *post); err != nil {
				return fmt.Errorf("failed to %s post %d: %w", use, postID, err)
			}

			fmt.Printf("post %d %sed\n", postID, use)
			return nil
		},
	}

	cmd.Flags().Int64Var(&editorID, "editor", 0, "the editor the post belongs to")
	_ = cmd.MarkFlagRequired("editor")

	return cmd
}

// findPost walks the editor's pages until it finds the post. The API has no
// post-by-id endpoint, so lookup goes through the per-editor listing.
func findPost(cmd *cobra.Command, s *store.Store, editorID, postID int64) (*model.Post, error) {
	for page := 0; ; page++ {
		if err := s.FetchUserPosts(cmd.Context(), editorID, page); err != nil {
			return nil, fmt.Errorf("failed to fetch posts for editor %d: %w", editorID, err)
		}

		_, result := s.UserPosts()
		for _, p := range result.Content {
			if p.ID == postID {
				return &p, nil
			}
		}

		if page+1 >= result.TotalPages {
			return nil, fmt.Errorf("post %d not found for editor %d", postID, editorID)
		}
	}
}
