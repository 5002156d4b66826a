package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/export"
	"github.com/clausemd/clausemd/internal/ingest"
	"github.com/clausemd/clausemd/internal/number"
	"github.com/clausemd/clausemd/internal/parse"
	"github.com/clausemd/clausemd/internal/transform"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clausemd",
		Short: "Contract authoring structure engine",
		Long: `Clausemd parses constrained contract authoring text into a canonical
document tree, keeps heading numbering consistent under edits, and
serializes the tree back to canonical authoring text.`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(renumberCmd())
	rootCmd.AddCommand(transformCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var source, format string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse authoring text or a document file",
		Long: `Parse a contract document into the canonical tree and render it in the
requested output format.

With --source - (the default), authoring text is read from stdin.
Otherwise the file is ingested by extension (.md, .html, .pdf, .txt).

Example:
  clausemd parse --source contract.md --format editor_html
  cat contract.txt | clausemd parse --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc *doctree.Document
			if source == "" || source == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				doc = parse.Text(string(data))
			} else {
				f, err := os.Open(source)
				if err != nil {
					return err
				}
				defer f.Close()

				ing, err := ingest.ForFile(source)
				if err != nil {
					return err
				}
				blocks, err := ing.Ingest(f, filepath.Base(source))
				if err != nil {
					return err
				}
				doc = parse.Blocks(blocks)
			}

			f, err := export.For(format)
			if err != nil {
				return err
			}
			return printOutput(cmd, f.Format(doc))
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "-", "input file, or - for authoring text on stdin")
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "output format: "+strings.Join(export.Names(), ", "))
	return cmd
}

func exportCmd() *cobra.Command {
	var source string
	var sidecar bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize a document JSON back to authoring text",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, source)
			if err != nil {
				return err
			}
			result := export.Markdown(doc)
			if sidecar {
				return printOutput(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Markdown)
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "-", "document JSON file, or - for stdin")
	cmd.Flags().BoolVar(&sidecar, "sidecar", false, "include the variant sidecar (JSON output)")
	return cmd
}

func renumberCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Recompute heading number labels of a document JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, source)
			if err != nil {
				return err
			}
			doc, _ = number.Renumber(doc)
			return printOutput(cmd, doc)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "-", "document JSON file, or - for stdin")
	return cmd
}

func transformCmd() *cobra.Command {
	var mode, instruction string
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a clause transform to authoring text from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transform.Apply(transform.Request{
				Mode:        transform.Mode(mode),
				Markdown:    string(data),
				Instruction: instruction,
			}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "rewrite", "transform mode: rewrite, expand, rephrase, custom")
	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "instruction for custom mode")
	return cmd
}

func readDocument(cmd *cobra.Command, source string) (*doctree.Document, error) {
	var data []byte
	var err error
	if source == "" || source == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	doc := &doctree.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func printOutput(cmd *cobra.Command, v any) error {
	if s, ok := v.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
