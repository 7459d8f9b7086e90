package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/emeka-osuagwu/user-post-ui/config"
	"github.com/emeka-osuagwu/user-post-ui/internal/client"
	"github.com/emeka-osuagwu/user-post-ui/internal/model"

	"github.com/spf13/cobra"
)

func addServerFlag(cmd *cobra.Command, server *string) {
	cmd.Flags().StringVar(server, "server", config.BackendURL(), "backend base URL")
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %v", arg, err)
	}
	return id, nil
}

func usersCmd() *cobra.Command {
	var server string
	var page, limit int
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users with their posts and addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := client.New(server).FetchUsers(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	addServerFlag(cmd, &server)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "rows per page")
	return cmd
}

func userCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "user [id]",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := client.New(server).FetchUserDetails(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	addServerFlag(cmd, &server)
	return cmd
}

func createUserCmd() *cobra.Command {
	var server string
	var input model.CreateUserInput
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user with one address and one post",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.New(server).CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	addServerFlag(cmd, &server)
	cmd.Flags().StringVar(&input.Name, "name", "", "user name")
	cmd.Flags().StringVar(&input.Email, "email", "", "user email")
	cmd.Flags().StringVar(&input.Address, "address", "", "street address")
	cmd.Flags().StringVar(&input.PostContent, "post", "", "body of the first post")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func deletePostCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "delete-post [id]",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := client.New(server).DeletePost(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	addServerFlag(cmd, &server)
	return cmd
}
