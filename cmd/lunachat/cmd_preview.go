package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fungone76-ux/luna-chat-v1/internal/chat"
	"github.com/fungone76-ux/luna-chat-v1/internal/config"
	"github.com/fungone76-ux/luna-chat-v1/internal/prompt"
	"github.com/fungone76-ux/luna-chat-v1/internal/reply"
)

var (
	previewReplyFile string
	previewCharacter string
)

// previewCmd assembles prompts without running the gate
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the prompts a raw model output would produce",
	Long: `Parses the raw model output and assembles the positive/negative prompts
for a character, skipping the gate. Useful for tuning catalogs and base
prompts.

Example:
  lunachat preview --reply-file turn.json --character Luna`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewReplyFile, "reply-file", "f", "-", "file with the raw model output, - for stdin")
	previewCmd.Flags().StringVar(&previewCharacter, "character", "", "character to preview (default from config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	characters, err := chat.LoadCharacters(cfg.CharactersPath)
	if err != nil {
		return err
	}

	name := previewCharacter
	if name == "" {
		name = cfg.DefaultCharacter
	}
	char, ok := characters[name]
	if !ok {
		return fmt.Errorf("unknown character %q", name)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	raw, err := readRawReply(previewReplyFile)
	if err != nil {
		return err
	}

	r := reply.Parse(raw)
	picks := catalog.Pick(r.Tags, r.VisualDescription, cfg.SDXL)
	p := prompt.Build(char.BasePrompt, char.NegativePrompt, r, picks)

	fmt.Println(titleStyle.Render("Positive prompt"))
	fmt.Println(promptBox.Render(p.Positive))
	if p.Negative != "" {
		fmt.Println(titleStyle.Render("Negative prompt"))
		fmt.Println(promptBox.Render(p.Negative))
	}
	return nil
}
