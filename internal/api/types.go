package api

// TranslateRequest is the request body for POST /v2/translate.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Translation is a single translated text as returned by the API.
type Translation struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

// TranslateResponse is the response from POST /v2/translate.
type TranslateResponse struct {
	Translations Translation `json:"translations"`
}

// BatchTranslateRequest is the request body for POST /v2/translate/batch.
type BatchTranslateRequest struct {
	Texts  []string `json:"texts"`
	Source string   `json:"source"`
	Target string   `json:"target"`
}

// BatchTranslateResponse is the response from POST /v2/translate/batch.
type BatchTranslateResponse struct {
	Translations []Translation `json:"translations"`
}

// HTMLTranslateRequest is the request body for POST /v2/translate/html.
type HTMLTranslateRequest struct {
	HTML   string `json:"html"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// HTMLTranslateResponse is the response from POST /v2/translate/html.
type HTMLTranslateResponse struct {
	HTML   string `json:"html"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// EmailTranslateRequest is the request body for POST /v2/translate/email.
type EmailTranslateRequest struct {
	Subject   string `json:"subject"`
	EmailBody string `json:"email_body"`
	Source    string `json:"source"`
	Target    string `json:"target"`
}

// EmailTranslateResponse is the response from POST /v2/translate/email.
type EmailTranslateResponse struct {
	Subject   string `json:"subject"`
	EmailBody string `json:"email_body"`
	Source    string `json:"source"`
	Target    string `json:"target"`
}

// SubtitleTranslateRequest is the request body for POST /v2/translate/subtitles.
type SubtitleTranslateRequest struct {
	Content string `json:"content"`
	Format  string `json:"format"`
	Source  string `json:"source"`
	Target  string `json:"target"`
}

// SubtitleTranslateResponse is the response from POST /v2/translate/subtitles.
// Content is the translated subtitle payload, forwarded verbatim.
type SubtitleTranslateResponse struct {
	Content string `json:"content"`
	Format  string `json:"format"`
	Source  string `json:"source"`
	Target  string `json:"target"`
}

// DetectLanguageRequest is the request body for POST /v2/language/detect.
type DetectLanguageRequest struct {
	Text string `json:"text"`
}

// LanguageDetection is the detected language and confidence score.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// DetectLanguageResponse is the response from POST /v2/language/detect.
type DetectLanguageResponse struct {
	LanguageDetection LanguageDetection `json:"language_detection"`
}

// SupportedLanguagesResponse is the response from GET /v2/language/supported.
// Languages maps language codes to display names.
type SupportedLanguagesResponse struct {
	Languages map[string]string `json:"languages"`
}

// AccountSummary is the response from GET /v2/user/account.
type AccountSummary struct {
	Plan             string       `json:"plan"`
	CreditsRemaining int64        `json:"credits_remaining"`
	Usage            AccountUsage `json:"usage"`
}

// AccountUsage holds usage counters for the current billing period.
type AccountUsage struct {
	TotalRequests   int64 `json:"total_requests"`
	TotalCharacters int64 `json:"total_characters"`
}

// CreateI18nJobParams are the inputs for POST /v2/i18n/jobs. The file is
// uploaded as multipart form data; its format is opaque to the client.
type CreateI18nJobParams struct {
	FileName        string
	FileContent     []byte
	SourceLanguage  string
	TargetLanguages []string
	WebhookURL      string
}

// CreateI18nJobResponse is the response from POST /v2/i18n/jobs.
type CreateI18nJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// I18nJob describes an i18n translation job.
type I18nJob struct {
	ID              string   `json:"id"`
	Status          string   `json:"status"`
	SourceLanguage  string   `json:"source_language"`
	TargetLanguages []string `json:"target_languages"`
	CreatedAt       string   `json:"created_at"`
}

// ListI18nJobsResponse is the paginated response from GET /v2/i18n/jobs.
type ListI18nJobsResponse struct {
	Results  []I18nJob `json:"results"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int       `json:"total"`
}

// DeleteI18nJobResponse is the response from DELETE /v2/i18n/jobs/{id}.
type DeleteI18nJobResponse struct {
	Detail string `json:"detail"`
}
