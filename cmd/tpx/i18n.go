package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	translateplus "github.com/translateplus/client-go"
)

var (
	flagI18nSource  string
	flagI18nWebhook string
	flagI18nOutput  string
	flagPage        int
	flagPageSize    int
)

var i18nCmd = &cobra.Command{
	Use:   "i18n",
	Short: "Manage i18n file translation jobs",
}

var i18nCreateCmd = &cobra.Command{
	Use:   "create [file] [target-lang,...]",
	Short: "Upload an i18n file and start a translation job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		var opts []translateplus.I18nJobOption
		if flagI18nSource != "" {
			opts = append(opts, translateplus.WithSourceLanguage(flagI18nSource))
		}
		if flagI18nWebhook != "" {
			opts = append(opts, translateplus.WithWebhookURL(flagI18nWebhook))
		}

		job, err := client.CreateI18nJob(cmd.Context(), args[0], strings.Split(args[1], ","), opts...)
		if err != nil {
			return err
		}
		fmt.Printf("Job %s created (%s)\n", job.JobID, job.Status)
		return nil
	},
}

var i18nStatusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Show the status of an i18n job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		job, err := client.GetI18nJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Job %s: %s (%s -> %s)\n",
			job.ID, job.Status, job.SourceLanguage, strings.Join(job.TargetLanguages, ","))
		return nil
	},
}

var i18nListCmd = &cobra.Command{
	Use:   "list",
	Short: "List i18n jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		list, err := client.ListI18nJobs(cmd.Context(), flagPage, flagPageSize)
		if err != nil {
			return err
		}
		for _, job := range list.Results {
			fmt.Printf("%s\t%s\n", job.ID, job.Status)
		}
		fmt.Printf("Page %d of %d jobs total\n", list.Page, list.Total)
		return nil
	},
}

var i18nDownloadCmd = &cobra.Command{
	Use:   "download [job-id] [lang]",
	Short: "Download a translated i18n file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		content, err := client.DownloadI18nFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if flagI18nOutput == "" || flagI18nOutput == "-" {
			_, err = os.Stdout.Write(content)
			return err
		}
		if err := os.WriteFile(flagI18nOutput, content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", flagI18nOutput, err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(content), flagI18nOutput)
		return nil
	},
}

var i18nDeleteCmd = &cobra.Command{
	Use:   "delete [job-id]",
	Short: "Delete an i18n job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteI18nJob(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Job %s deleted\n", args[0])
		return nil
	},
}

func init() {
	i18nCreateCmd.Flags().StringVar(&flagI18nSource, "source", "", "source language (default: auto-detect)")
	i18nCreateCmd.Flags().StringVar(&flagI18nWebhook, "webhook", "", "webhook URL notified on completion")
	i18nDownloadCmd.Flags().StringVarP(&flagI18nOutput, "output", "o", "", "output file (default: stdout)")
	i18nListCmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	i18nListCmd.Flags().IntVar(&flagPageSize, "page-size", 20, "jobs per page")

	i18nCmd.AddCommand(i18nCreateCmd, i18nStatusCmd, i18nListCmd, i18nDownloadCmd, i18nDeleteCmd)
}
