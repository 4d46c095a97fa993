package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameStoryCmd())
	cmd.AddCommand(newGameDrawCmd())
	cmd.AddCommand(newGameWinnerCmd())
	cmd.AddCommand(newGameMintCmd())

	return cmd
}

func gamePath(id, action string) string {
	p := "/api/v1/games/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

func newGameCreateCmd() *cobra.Command {
	var id string
	var capacity, minParticipants int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game as host",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"id":               id,
				"capacity":         capacity,
				"min_participants": minParticipants,
			}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Game id, uppercase letters and digits (required)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Maximum participants (0 for default)")
	cmd.Flags().IntVar(&minParticipants, "min-participants", 0, "Minimum participants to start (0 for default)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(gamePath(args[0], ""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <id>",
		Short: "Join a game as a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(gamePath(args[0], "join"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start the game (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(gamePath(args[0], "start"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStoryCmd() *cobra.Command {
	var story string

	cmd := &cobra.Command{
		Use:   "story <id>",
		Short: "Submit the story prompt (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if story == "" {
				return fmt.Errorf("--story is required")
			}

			req := map[string]string{"story": story}
			var result Game

			if err := client.Post(gamePath(args[0], "story"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&story, "story", "", "Story text (required)")
	_ = cmd.MarkFlagRequired("story")

	return cmd
}

func newGameDrawCmd() *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "draw <id>",
		Short: "Submit a drawing (participants only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ref == "" {
				return fmt.Errorf("--ref is required")
			}

			req := map[string]string{"ref": ref}
			var result Game

			if err := client.Post(gamePath(args[0], "drawings"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Drawing reference (required)")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

func newGameWinnerCmd() *cobra.Command {
	var index uint32

	cmd := &cobra.Command{
		Use:   "winner <id>",
		Short: "Select the winning drawing (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]uint32{"index": index}
			var result Game

			if err := client.Post(gamePath(args[0], "winner"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&index, "index", 0, "Winning drawing index")

	return cmd
}

func newGameMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint <id>",
		Short: "Mint the winning drawing and complete the game (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MintResult

			if err := client.Post(gamePath(args[0], "mint"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
