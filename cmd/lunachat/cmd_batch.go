package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fungone76-ux/luna-chat-v1/internal/chat"
)

var (
	batchFile    string
	batchWorkers int
)

// batchTurn is one line of the JSONL transcript.
type batchTurn struct {
	User string `json:"user"`
	Raw  string `json:"raw"`
}

// batchCmd replays a transcript of independent turns concurrently.
// Each line gets its own session, so the turns share nothing but the
// immutable catalog.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a JSONL transcript of turns concurrently",
	Long: `Reads a JSONL file where each line is {"user": "...", "raw": "..."} and
processes every line as an independent chat turn. Turns run in parallel;
the pipeline itself is stateless.

Example:
  lunachat batch --file transcript.jsonl --workers 8`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "JSONL transcript file (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of concurrent turns")
	_ = batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	f, err := os.Open(batchFile)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	var turns []batchTurn
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var t batchTurn
		if err := json.Unmarshal(line, &t); err != nil {
			return fmt.Errorf("line %d: %w", len(turns)+1, err)
		}
		turns = append(turns, t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	results := make([]*chat.TurnResult, len(turns))

	if batchWorkers < 1 {
		batchWorkers = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(batchWorkers)
	for i, t := range turns {
		i, t := i, t
		g.Go(func() error {
			session := engine.StartSession()
			res, err := engine.ProcessTurn(session, t.User, t.Raw)
			if err != nil {
				return fmt.Errorf("turn %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	generated := 0
	for i, res := range results {
		verdict := noStyle.Render("skip")
		if res.Decision.WillGenerate {
			verdict = yesStyle.Render("generate")
			generated++
		}
		fmt.Printf("%3d  %s  %-18s confidence=%s tags=%d\n",
			i+1, verdict, res.Decision.Reason, res.Reply.Confidence, len(res.Reply.Tags))
	}
	fmt.Printf("\n%s %d/%d turns would generate an image\n",
		labelStyle.Render("total:"), generated, len(turns))
	return nil
}
