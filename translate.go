package translateplus

import (
	"context"

	"github.com/translateplus/client-go/internal/api"
)

// Language defaults applied when source or target is empty.
const (
	// SourceAuto asks the server to detect the source language.
	SourceAuto = "auto"

	defaultTarget = "en"
)

// Batch size limits for TranslateBatch.
const (
	MinBatchSize = 1
	MaxBatchSize = 100
)

// Subtitle formats accepted by TranslateSubtitles.
const (
	FormatSRT = "srt"
	FormatVTT = "vtt"
)

func normalizeLangs(source, target string) (string, string) {
	if source == "" {
		source = SourceAuto
	}
	if target == "" {
		target = defaultTarget
	}
	return source, target
}

// Translate translates a single text. An empty source means auto-detect;
// an empty target defaults to English.
func (c *Client) Translate(ctx context.Context, text, source, target string) (*Translation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	source, target = normalizeLangs(source, target)
	resp, err := c.api.Translate(ctx, &api.TranslateRequest{
		Text:   text,
		Source: source,
		Target: target,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &resp.Translations, nil
}

// TranslateBatch translates between 1 and 100 texts in a single request.
// The returned slice is positionally aligned with the input.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, source, target string) ([]Translation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if len(texts) < MinBatchSize {
		return nil, &ValidationError{Message: "texts list cannot be empty"}
	}
	if len(texts) > MaxBatchSize {
		return nil, &ValidationError{Message: "maximum 100 texts allowed per batch request"}
	}

	source, target = normalizeLangs(source, target)
	resp, err := c.api.TranslateBatch(ctx, &api.BatchTranslateRequest{
		Texts:  texts,
		Source: source,
		Target: target,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Translations, nil
}

// TranslateHTML translates HTML content while preserving all tags and
// structure.
func (c *Client) TranslateHTML(ctx context.Context, html, source, target string) (*HTMLTranslation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	source, target = normalizeLangs(source, target)
	resp, err := c.api.TranslateHTML(ctx, &api.HTMLTranslateRequest{
		HTML:   html,
		Source: source,
		Target: target,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// TranslateEmail translates an email subject and HTML body.
func (c *Client) TranslateEmail(ctx context.Context, subject, emailBody, source, target string) (*EmailTranslation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	source, target = normalizeLangs(source, target)
	resp, err := c.api.TranslateEmail(ctx, &api.EmailTranslateRequest{
		Subject:   subject,
		EmailBody: emailBody,
		Source:    source,
		Target:    target,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// TranslateSubtitles translates SRT or VTT subtitle content. The payload
// is forwarded verbatim; the client does not parse it.
func (c *Client) TranslateSubtitles(ctx context.Context, content, format, source, target string) (*SubtitleTranslation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if format != FormatSRT && format != FormatVTT {
		return nil, &ValidationError{Message: `format must be "srt" or "vtt"`}
	}

	source, target = normalizeLangs(source, target)
	resp, err := c.api.TranslateSubtitles(ctx, &api.SubtitleTranslateRequest{
		Content: content,
		Format:  format,
		Source:  source,
		Target:  target,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// DetectLanguage detects the language of a text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*LanguageDetection, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.api.DetectLanguage(ctx, text)
	if err != nil {
		return nil, wrapError(err)
	}
	return &resp.LanguageDetection, nil
}

// SupportedLanguages returns the supported languages as a map of language
// code to display name.
func (c *Client) SupportedLanguages(ctx context.Context) (map[string]string, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.api.SupportedLanguages(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Languages, nil
}

// AccountSummary returns the account's credits, plan and usage.
func (c *Client) AccountSummary(ctx context.Context) (*AccountSummary, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.api.AccountSummary(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
