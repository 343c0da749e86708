// Package i18n translates user-facing API messages for the coffee builder.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":           "Invalid request",
			"error.invalid_request_body":      "Invalid request body",
			"error.internal_error":            "An unexpected error occurred",
			"error.unauthorized":              "Unauthorized",
			"error.api_key_required":          "API key is required",
			"error.invalid_api_key":           "Invalid API key",
			"error.not_found":                 "Not found",
			"error.rate_limit_exceeded":       "Too many requests, please try again later",
			"error.timeout":                   "Request timed out",
			"error.invalid_token":             "Invalid or expired token",
			"error.token_required":            "Authentication token is required",
			"error.insufficient_scope":        "Token does not allow this operation",
			"error.session_not_found":         "Session not found or expired",
			"error.invalid_category":          "Unknown category for this operation",
			"error.invalid_catalog":           "Catalog is invalid",
			"error.catalog_store_unavailable": "Catalog storage is unavailable",
		},
		"pt": {
			"error.invalid_request":           "Requisição inválida",
			"error.invalid_request_body":      "Corpo da requisição inválido",
			"error.internal_error":            "Ocorreu um erro inesperado",
			"error.unauthorized":              "Não autorizado",
			"error.api_key_required":          "Chave de API é obrigatória",
			"error.invalid_api_key":           "Chave de API inválida",
			"error.not_found":                 "Não encontrado",
			"error.rate_limit_exceeded":       "Muitas requisições, tente novamente mais tarde",
			"error.timeout":                   "Tempo de requisição esgotado",
			"error.invalid_token":             "Token inválido ou expirado",
			"error.token_required":            "Token de autenticação é obrigatório",
			"error.insufficient_scope":        "O token não permite esta operação",
			"error.session_not_found":         "Sessão não encontrada ou expirada",
			"error.invalid_category":          "Categoria desconhecida para esta operação",
			"error.invalid_catalog":           "Catálogo inválido",
			"error.catalog_store_unavailable": "Armazenamento de catálogo indisponível",
		},
		"nl": {
			"error.invalid_request":           "Ongeldig verzoek",
			"error.invalid_request_body":      "Ongeldige aanvraag body",
			"error.internal_error":            "Er is een onverwachte fout opgetreden",
			"error.unauthorized":              "Niet geautoriseerd",
			"error.api_key_required":          "API-sleutel is vereist",
			"error.invalid_api_key":           "Ongeldige API-sleutel",
			"error.not_found":                 "Niet gevonden",
			"error.rate_limit_exceeded":       "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                   "Verzoek verlopen",
			"error.invalid_token":             "Ongeldig of verlopen token",
			"error.token_required":            "Authenticatietoken is vereist",
			"error.insufficient_scope":        "Token staat deze bewerking niet toe",
			"error.session_not_found":         "Sessie niet gevonden of verlopen",
			"error.invalid_category":          "Onbekende categorie voor deze bewerking",
			"error.invalid_catalog":           "Catalogus is ongeldig",
			"error.catalog_store_unavailable": "Catalogusopslag is niet beschikbaar",
		},
	}
}
