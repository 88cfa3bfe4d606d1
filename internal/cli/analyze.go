package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/feature"
)

type AnalyzeCommand struct {
	Text      string
	BurstText string
}

func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{}
}

func (cmd *AnalyzeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	fs.StringVar(&cmd.Text, "text", "", "Rules text to analyze (required)")
	fs.StringVar(&cmd.BurstText, "burst", "", "Burst text to analyze")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s analyze [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the feature extraction rules over a rules text and print the result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s analyze -text 'カードを１枚引く。'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s analyze -text '...' -burst 'カードを1枚引く'\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Text == "" && cmd.BurstText == "" {
		fs.Usage()
		return fmt.Errorf("text is required")
	}

	return nil
}

func (cmd *AnalyzeCommand) Run() error {
	table, err := analyzer.DefaultPatternTable()
	if err != nil {
		return fmt.Errorf("failed to compile pattern catalog: %w", err)
	}
	a := analyzer.New(table)

	res := a.Analyze(cmd.Text)
	burst := a.AnalyzeBurst(cmd.BurstText)
	bits1, bits2 := feature.EncodeFeatures(res.Tags)
	burstBits := feature.EncodeBurst(burst.Tags)

	fmt.Printf("Processed text: %s\n", res.ProcessedText)
	fmt.Printf("Features (%d):\n", len(res.Tags))
	for _, name := range feature.Names(res.Tags) {
		fmt.Printf("  - %s\n", name)
	}
	if cmd.BurstText != "" {
		fmt.Printf("Burst features (%d):\n", len(burst.Tags))
		for _, name := range feature.BurstNames(burst.Tags) {
			fmt.Printf("  - %s\n", name)
		}
	}
	fmt.Printf("Bits: word1=%d word2=%d burst=%d\n", bits1, bits2, burstBits)

	return nil
}
