package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Translate translates a single text.
func (c *Client) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	var result TranslateResponse
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/translate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TranslateBatch translates multiple texts in a single request.
func (c *Client) TranslateBatch(ctx context.Context, req *BatchTranslateRequest) (*BatchTranslateResponse, error) {
	var result BatchTranslateResponse
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/translate/batch", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TranslateHTML translates HTML content preserving tags and structure.
func (c *Client) TranslateHTML(ctx context.Context, req *HTMLTranslateRequest) (*HTMLTranslateResponse, error) {
	var result HTMLTranslateResponse
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/translate/html", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TranslateEmail translates an email subject and HTML body.
func (c *Client) TranslateEmail(ctx context.Context, req *EmailTranslateRequest) (*EmailTranslateResponse, error) {
	var result EmailTranslateResponse
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/translate/email", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TranslateSubtitles translates subtitle content.
func (c *Client) TranslateSubtitles(ctx context.Context, req *SubtitleTranslateRequest) (*SubtitleTranslateResponse, error) {
	var result SubtitleTranslateResponse
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/translate/subtitles", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectLanguage detects the language of a text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*DetectLanguageResponse, error) {
	var result DetectLanguageResponse
	req := &DetectLanguageRequest{Text: text}
	if err := c.DoJSON(ctx, http.MethodPost, "/v2/language/detect", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SupportedLanguages lists the languages the service can translate.
func (c *Client) SupportedLanguages(ctx context.Context) (*SupportedLanguagesResponse, error) {
	var result SupportedLanguagesResponse
	if err := c.DoJSON(ctx, http.MethodGet, "/v2/language/supported", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AccountSummary retrieves the account's credits, plan and usage.
func (c *Client) AccountSummary(ctx context.Context) (*AccountSummary, error) {
	var result AccountSummary
	if err := c.DoJSON(ctx, http.MethodGet, "/v2/user/account", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateI18nJob uploads an i18n file and starts a translation job.
func (c *Client) CreateI18nJob(ctx context.Context, params *CreateI18nJobParams) (*CreateI18nJobResponse, error) {
	fields := map[string]string{
		"source_language":  params.SourceLanguage,
		"target_languages": strings.Join(params.TargetLanguages, ","),
	}
	if params.WebhookURL != "" {
		fields["webhook_url"] = params.WebhookURL
	}

	file := &MultipartFile{
		Field:   "file",
		Name:    params.FileName,
		Content: params.FileContent,
	}

	var result CreateI18nJobResponse
	if err := c.DoMultipart(ctx, http.MethodPost, "/v2/i18n/jobs", fields, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetI18nJob retrieves the status of an i18n translation job.
func (c *Client) GetI18nJob(ctx context.Context, jobID string) (*I18nJob, error) {
	path := fmt.Sprintf("/v2/i18n/jobs/%s", url.PathEscape(jobID))
	var result I18nJob
	if err := c.DoJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListI18nJobs lists i18n translation jobs with pagination.
func (c *Client) ListI18nJobs(ctx context.Context, page, pageSize int) (*ListI18nJobsResponse, error) {
	query := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}
	var result ListI18nJobsResponse
	if err := c.DoQuery(ctx, http.MethodGet, "/v2/i18n/jobs", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DownloadI18nFile downloads a translated i18n file as raw bytes.
func (c *Client) DownloadI18nFile(ctx context.Context, jobID, languageCode string) ([]byte, error) {
	path := fmt.Sprintf("/v2/i18n/jobs/%s/download/%s",
		url.PathEscape(jobID), url.PathEscape(languageCode))
	return c.DoRaw(ctx, http.MethodGet, path)
}

// DeleteI18nJob deletes an i18n translation job.
func (c *Client) DeleteI18nJob(ctx context.Context, jobID string) (*DeleteI18nJobResponse, error) {
	path := fmt.Sprintf("/v2/i18n/jobs/%s", url.PathEscape(jobID))
	var result DeleteI18nJobResponse
	if err := c.DoJSON(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
