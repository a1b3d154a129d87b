package translateplus

import "github.com/translateplus/client-go/internal/api"

// Translation is a single translated text.
type Translation = api.Translation

// HTMLTranslation is translated HTML content with tags preserved.
type HTMLTranslation = api.HTMLTranslateResponse

// EmailTranslation is a translated email subject and body.
type EmailTranslation = api.EmailTranslateResponse

// SubtitleTranslation is translated subtitle content.
type SubtitleTranslation = api.SubtitleTranslateResponse

// LanguageDetection is a detected language and confidence score.
type LanguageDetection = api.LanguageDetection

// AccountSummary holds the account's plan, credits and usage.
type AccountSummary = api.AccountSummary

// AccountUsage holds usage counters for the current billing period.
type AccountUsage = api.AccountUsage

// I18nJob describes an i18n translation job.
type I18nJob = api.I18nJob

// I18nJobCreated is the acknowledgement for a newly created i18n job.
type I18nJobCreated = api.CreateI18nJobResponse

// I18nJobList is a paginated page of i18n jobs.
type I18nJobList = api.ListI18nJobsResponse
