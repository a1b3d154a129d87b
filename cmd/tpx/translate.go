package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate a single text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := client.Translate(cmd.Context(), args[0], flagSource, flagTarget)
		if err != nil {
			return err
		}
		fmt.Println(result.Translation)
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [text ...]",
	Short: "Translate multiple texts concurrently (reads stdin when no args)",
	RunE: func(cmd *cobra.Command, args []string) error {
		texts := args
		if len(texts) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					texts = append(texts, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		results, err := client.TranslateConcurrent(cmd.Context(), texts, flagSource, flagTarget)
		if err != nil {
			return err
		}

		for i, result := range results {
			if result.Err != nil {
				fmt.Printf("%s\t<error: %v>\n", texts[i], result.Err)
				continue
			}
			fmt.Printf("%s\t%s\n", texts[i], result.Translation.Translation)
		}
		return nil
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of a text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		detection, err := client.DetectLanguage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (confidence %.2f)\n", detection.Language, detection.Confidence)
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		languages, err := client.SupportedLanguages(cmd.Context())
		if err != nil {
			return err
		}

		codes := make([]string, 0, len(languages))
		for code := range languages {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("%s\t%s\n", code, languages[code])
		}
		return nil
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show account plan, credits and usage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		summary, err := client.AccountSummary(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Plan:              %s\n", summary.Plan)
		fmt.Printf("Credits remaining: %d\n", summary.CreditsRemaining)
		fmt.Printf("Total requests:    %d\n", summary.Usage.TotalRequests)
		fmt.Printf("Total characters:  %d\n", summary.Usage.TotalCharacters)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{translateCmd, batchCmd} {
		cmd.Flags().StringVarP(&flagSource, "source", "s", "", "source language (default: auto-detect)")
		cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "target language (default: en)")
	}
}
