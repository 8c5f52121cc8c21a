package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bon-clevique/NotionSync/internal/adapters/driven/notion"
	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/markdown"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a markdown file and print the block payload",
	Long: `Converts a markdown file into Notion blocks and prints them as JSON.
This is exactly the payload the watch daemon would send for the file.
Nothing is created remotely and the file is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileRead, err)
	}

	blocks := markdown.New().Convert(string(content))
	payload, err := json.MarshalIndent(notion.Blocks(blocks), "", "  ")
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}

	cmd.Println(string(payload))
	return nil
}
