package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"medspell/internal/session"
	"medspell/internal/settings"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "medspell",
		Short:        "Clinical spell checker",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(fixCmd())
	rootCmd.AddCommand(dictCmd())
	rootCmd.AddCommand(settingsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Report misspelled words as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			st := a.settings.Load(ctx)
			if auto, _ := cmd.Flags().GetBool("autocorrect"); auto {
				st.AutoCorrect = true
			}
			return writeJSON(cmd.OutOrStdout(), buildReport(ctx, a, text, st))
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read text from file instead of stdin")
	cmd.Flags().Bool("autocorrect", false, "Apply unambiguous corrections and report the corrected text")
	return cmd
}

func fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Correct a file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			host := session.NewStringHost(string(data))
			s := a.newSession(host, a.settings)
			if err := runFix(ctx, s, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			if write, _ := cmd.Flags().GetBool("write"); write {
				if host.Text() == string(data) {
					return nil
				}
				info, err := os.Stat(path)
				if err != nil {
					return err
				}
				return os.WriteFile(path, []byte(host.Text()), info.Mode().Perm())
			}
			_, err = io.WriteString(cmd.OutOrStdout(), host.Text())
			return err
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Write the corrected text back to the file")
	return cmd
}

func dictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the user dictionary",
	}

	addCmd := &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the user dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, w := range args {
				if strings.TrimSpace(w) == "" {
					return fmt.Errorf("empty word")
				}
				if err := a.dict.AddUserTerm(ctx, w); err != nil {
					return err
				}
			}
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove words from the user dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, w := range args {
				if err := a.dict.RemoveUserTerm(ctx, w); err != nil {
					return err
				}
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List user dictionary words in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, w := range a.dict.ListUserTerms() {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd, removeCmd, listCmd)
	return cmd
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change checker settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := yaml.Marshal(a.settings.Load(ctx))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (" + strings.Join(settings.Keys, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.settings.Load(ctx)
			if err := st.Set(args[0], args[1]); err != nil {
				return err
			}
			return a.settings.Save(ctx, st)
		},
	}

	cmd.AddCommand(showCmd, setCmd)
	return cmd
}
