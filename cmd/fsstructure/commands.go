package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozum/fs-structure/pkg/fsstructure"
	"github.com/ozum/fs-structure/pkg/fsstructure/items"
)

func newCreateCommand(a *app) *cobra.Command {
	var noOverwrite bool

	cmd := &cobra.Command{
		Use:   "create [tree-file]",
		Short: "Create the files of a tree",
		Long:  "Create every file, directory and symlink described by a tree file under the cwd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := readTree(args[0])
			if err != nil {
				return err
			}

			opts := append(a.options(), fsstructure.WithOverwrite(!noOverwrite))
			root, err := a.fs.Create(cmd.Context(), tree, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created tree in %s\n", root.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail instead of replacing existing files and links")

	return cmd
}

func newRemoveCommand(a *app) *cobra.Command {
	var (
		rmUp           string
		ignoreNotEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "remove [tree-file]",
		Short: "Remove the files of a tree",
		Long: `Remove every file, directory and symlink described by a tree file.
Directories holding entries the tree does not describe make the command fail
unless --ignore-not-empty is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := readTree(args[0])
			if err != nil {
				return err
			}

			opts := append(a.options(), fsstructure.WithIgnoreNotEmpty(ignoreNotEmpty))
			if cmd.Flags().Changed("rm-up") {
				opts = append(opts, fsstructure.WithRmUp(rmUp))
			}
			if err := a.fs.Remove(cmd.Context(), tree, opts...); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Removed tree")
			return nil
		},
	}

	cmd.Flags().StringVar(&rmUp, "rm-up", "", "Also remove emptied parent directories up to this one (empty: the cwd)")
	cmd.Flags().BoolVar(&ignoreNotEmpty, "ignore-not-empty", false, "Keep non-empty directories instead of failing")

	return cmd
}

func newLoadCommand(a *app) *cobra.Command {
	var (
		includeJunk bool
		includeDirs bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "load [dir]",
		Short: "Print a directory as a flat tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(a.options(),
				fsstructure.WithIgnoreJunk(!includeJunk),
				fsstructure.WithIncludeDirs(includeDirs),
			)
			tree, err := a.fs.Load(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), tree, format)
		},
	}

	cmd.Flags().BoolVar(&includeJunk, "include-junk", false, "Include OS junk files such as .DS_Store")
	cmd.Flags().BoolVar(&includeDirs, "include-dirs", false, "Include directory markers")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")

	return cmd
}

func newFlatCommand(a *app) *cobra.Command {
	var (
		includeDirs bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "flat [tree-file]",
		Short: "Print a tree file flattened",
		Long:  "Print a tree file with every entry keyed by its full relative path, as load prints directories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := readTree(args[0])
			if err != nil {
				return err
			}

			flat, err := a.fs.Flat(tree, append(a.options(), fsstructure.WithIncludeDirs(includeDirs))...)
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), flat, format)
		},
	}

	cmd.Flags().BoolVar(&includeDirs, "include-dirs", false, "Include directory markers")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")

	return cmd
}

func newPlanCommand(a *app) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "plan [tree-file]",
		Short: "Show the steps create or remove would perform",
		Long:  "List the filesystem steps of a create (or remove) without touching the filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := readTree(args[0])
			if err != nil {
				return err
			}

			steps, err := a.fs.Plan(tree, items.PlanOptions{Remove: remove}, a.options()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, step := range steps {
				if step.Detail != "" {
					fmt.Fprintf(out, "  %d. %s %s (%s)\n", i+1, step.Action, step.Path, step.Detail)
				} else {
					fmt.Fprintf(out, "  %d. %s %s\n", i+1, step.Action, step.Path)
				}
			}
			fmt.Fprintf(out, "Steps: %d\n", len(steps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Plan a remove instead of a create")

	return cmd
}

func newTempDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tempdir",
		Short: "Create a new temporary directory and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.fs.TempDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
