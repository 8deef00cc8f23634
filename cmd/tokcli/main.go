// Command tokcli is a thin example harness around the tokenizer
// package: point it at a model directory and either a positional
// prompt or stdin, and it prints token ids (or, with --decode,
// re-assembles text from a whitespace-separated id list).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/localchat/tokenizer"
	"github.com/spf13/cobra"
)

var (
	useGPT2 bool
	decode  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tokcli <model-dir> [prompt]",
	Short: "Tokenize or detokenize text against a cl100k or GPT-2 vocabulary",
	Long: `tokcli loads a tokenizer from a model directory and either encodes a
prompt to token ids or, with --decode, turns a list of ids back into text.

For cl100k, <model-dir> must contain cl100k_base.tiktoken.
For GPT-2 (--gpt2), <model-dir> must contain vocab.json and merges.txt.

If no prompt argument is given, the prompt is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&useGPT2, "gpt2", false, "load a GPT-2 style vocab.json + merges.txt instead of cl100k")
	rootCmd.Flags().BoolVar(&decode, "decode", false, "treat the prompt as whitespace-separated token ids and print decoded text")
}

func run(cmd *cobra.Command, args []string) error {
	modelDir := args[0]

	var prompt string
	if len(args) == 2 {
		prompt = args[1]
	} else {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		prompt = strings.TrimRight(string(data), "\n")
	}

	if useGPT2 {
		return runGPT2(modelDir, prompt)
	}
	return runCL100K(modelDir, prompt)
}

func runCL100K(modelDir, prompt string) error {
	tok, err := tokenizer.LoadCL100K(filepath.Join(modelDir, "cl100k_base.tiktoken"))
	if err != nil {
		return err
	}

	if decode {
		ids, err := parseIDs(prompt)
		if err != nil {
			return err
		}
		fmt.Println(string(tok.Decode(ids)))
		return nil
	}

	ids, err := tok.Encode([]byte(prompt))
	if err != nil {
		return err
	}
	printIDs(ids)
	return nil
}

func runGPT2(modelDir, prompt string) error {
	tok, err := tokenizer.LoadGPT2(
		filepath.Join(modelDir, "vocab.json"),
		filepath.Join(modelDir, "merges.txt"),
	)
	if err != nil {
		return err
	}

	if decode {
		ids, err := parseIDs(prompt)
		if err != nil {
			return err
		}
		fmt.Println(string(tok.Decode(ids)))
		return nil
	}

	ids, err := tok.Encode([]byte(prompt))
	if err != nil {
		return err
	}
	printIDs(ids)
	return nil
}

func parseIDs(s string) ([]uint32, error) {
	fields := strings.Fields(s)
	ids := make([]uint32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse token id %q: %w", f, err)
		}
		ids = append(ids, uint32(n))
	}
	return ids, nil
}

func printIDs(ids []uint32) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	fmt.Println(strings.Join(parts, " "))
}
