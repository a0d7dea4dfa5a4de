package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fungone76-ux/luna-chat-v1/internal/chat"
)

var (
	turnUserText  string
	turnReplyFile string
	turnCharacter string
)

// turnCmd processes one complete chat turn
var turnCmd = &cobra.Command{
	Use:   "turn",
	Short: "Process one chat turn from raw model output",
	Long: `Parses the raw model output, decides whether to generate an image for
the turn, and prints the structured reply, the gate decision, and — when
triggered — the assembled prompts.

Example:
  lunachat turn --user "manda una foto" --reply-file turn.json`,
	RunE: runTurn,
}

func init() {
	turnCmd.Flags().StringVarP(&turnUserText, "user", "u", "", "the user's message for this turn (required)")
	turnCmd.Flags().StringVarP(&turnReplyFile, "reply-file", "f", "-", "file with the raw model output, - for stdin")
	turnCmd.Flags().StringVar(&turnCharacter, "character", "", "override the default character")
	_ = turnCmd.MarkFlagRequired("user")
}

func runTurn(cmd *cobra.Command, args []string) error {
	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	raw, err := readRawReply(turnReplyFile)
	if err != nil {
		return err
	}

	session := engine.StartSession()
	if turnCharacter != "" {
		session.CharacterName = turnCharacter
	}

	result, err := engine.ProcessTurn(session, turnUserText, raw)
	if err != nil {
		return err
	}

	printTurnResult(result)
	return nil
}

func printTurnResult(result *chat.TurnResult) {
	r := result.Reply

	fmt.Println(titleStyle.Render("Reply"))
	fmt.Printf("%s %s\n", labelStyle.Render("confidence:"), r.Confidence)
	fmt.Printf("%s %s\n", labelStyle.Render("dialogue:"), r.DialogueText)
	if len(r.Tags) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("tags:"), strings.Join(r.Tags, ", "))
	}
	if r.VisualDescription != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("visual:"), r.VisualDescription)
	}
	if r.FollowUpAction != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("follow-up:"), r.FollowUpAction)
	}
	for _, a := range result.Advisories {
		fmt.Printf("%s %s: %s\n", labelStyle.Render("advisory:"), a.Field, a.Message)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Image decision"))
	verdict := noStyle.Render("no")
	if result.Decision.WillGenerate {
		verdict = yesStyle.Render("yes")
	}
	fmt.Printf("%s %s (%s)\n", labelStyle.Render("generate:"), verdict, result.Decision.Reason)

	if result.Prompts == nil {
		return
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Modifiers"))
	for _, p := range result.Picks {
		fmt.Printf("  %s  weight=%.2f  category=%s\n", p.Entry.Name, p.Weight, p.Entry.Category)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Positive prompt"))
	fmt.Println(promptBox.Render(result.Prompts.Positive))
	if result.Prompts.Negative != "" {
		fmt.Println(titleStyle.Render("Negative prompt"))
		fmt.Println(promptBox.Render(result.Prompts.Negative))
	}
}
