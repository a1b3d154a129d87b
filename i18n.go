package translateplus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/translateplus/client-go/internal/api"
)

// Pagination defaults for ListI18nJobs.
const (
	defaultPage     = 1
	defaultPageSize = 20
)

// i18nJobConfig holds optional settings for i18n job creation.
type i18nJobConfig struct {
	sourceLanguage string
	webhookURL     string
}

// I18nJobOption configures i18n job creation.
type I18nJobOption func(*i18nJobConfig)

// WithSourceLanguage sets the source language of the uploaded file.
// Defaults to auto-detection.
func WithSourceLanguage(lang string) I18nJobOption {
	return func(c *i18nJobConfig) {
		c.sourceLanguage = lang
	}
}

// WithWebhookURL sets a webhook URL notified when the job completes.
func WithWebhookURL(url string) I18nJobOption {
	return func(c *i18nJobConfig) {
		c.webhookURL = url
	}
}

// CreateI18nJob uploads an i18n file (JSON, YAML, PO, ...) and starts an
// asynchronous translation job into the given target languages. The file
// content is opaque to the client and forwarded as-is.
func (c *Client) CreateI18nJob(ctx context.Context, filePath string, targetLanguages []string, opts ...I18nJobOption) (*I18nJobCreated, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if len(targetLanguages) == 0 {
		return nil, &ValidationError{Message: "at least one target language is required"}
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("cannot read file %s: %v", filePath, err)}
	}

	cfg := &i18nJobConfig{sourceLanguage: SourceAuto}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.api.CreateI18nJob(ctx, &api.CreateI18nJobParams{
		FileName:        filepath.Base(filePath),
		FileContent:     content,
		SourceLanguage:  cfg.sourceLanguage,
		TargetLanguages: targetLanguages,
		WebhookURL:      cfg.webhookURL,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// GetI18nJob returns the status of an i18n translation job.
func (c *Client) GetI18nJob(ctx context.Context, jobID string) (*I18nJob, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	job, err := c.api.GetI18nJob(ctx, jobID)
	if err != nil {
		return nil, wrapError(err)
	}
	return job, nil
}

// ListI18nJobs lists i18n translation jobs. Non-positive page or pageSize
// fall back to the defaults (page 1, 20 jobs per page).
func (c *Client) ListI18nJobs(ctx context.Context, page, pageSize int) (*I18nJobList, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	list, err := c.api.ListI18nJobs(ctx, page, pageSize)
	if err != nil {
		return nil, wrapError(err)
	}
	return list, nil
}

// DownloadI18nFile downloads a translated i18n file as raw bytes, exactly
// as produced by the service.
func (c *Client) DownloadI18nFile(ctx context.Context, jobID, languageCode string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	content, err := c.api.DownloadI18nFile(ctx, jobID, languageCode)
	if err != nil {
		return nil, wrapError(err)
	}
	return content, nil
}

// DeleteI18nJob deletes an i18n translation job.
func (c *Client) DeleteI18nJob(ctx context.Context, jobID string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	if _, err := c.api.DeleteI18nJob(ctx, jobID); err != nil {
		return wrapError(err)
	}
	return nil
}
