package locale

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Supported language tags.
const (
	// LanguageJapanese is the default language.
	LanguageJapanese = "ja-JP"
	// LanguageEnglish is the fallback language.
	LanguageEnglish = "en-US"
)

// Message catalog keys.
const (
	KeyLoginRateLimited       = "login.rate_limited"
	KeyLoginInvalidCredential = "login.invalid_credentials"
	KeyLoginUnknownError      = "login.unknown_error"
	KeyStoreToday             = "store.today"
	KeyStoreVideoHint         = "store.video_hint"
)

// defaultMessages is the built-in catalog; a YAML file can override entries.
//
//nolint:gochecknoglobals,lll // Immutable message table used as a constant.
var defaultMessages = map[string]map[string]string{
	KeyLoginRateLimited: {
		LanguageJapanese: "現在サーバーが込み合っており、取得ができませんでした。後程お試しください",
		LanguageEnglish:  "The server is currently busy and could not retrieve the data. Please try again later.",
	},
	KeyLoginInvalidCredential: {
		LanguageJapanese: "ログインの情報に誤りがあります。\n再度「登録」コマンドを利用してログイン情報を登録してください",
		LanguageEnglish:  "Invalid credentials, Please use the [register] command again to register your login information.",
	},
	KeyLoginUnknownError: {
		LanguageJapanese: "不明なエラーが発生しました。管理者までお問い合わせください。",
		LanguageEnglish:  "An unknown error has occurred. Please contact the administrator.",
	},
	KeyStoreToday: {
		LanguageJapanese: "本日のストアの内容をお送りします。",
		LanguageEnglish:  "Here's what's in your valorant store today",
	},
	KeyStoreVideoHint: {
		LanguageJapanese: "↑から動画が見れます",
		LanguageEnglish:  "You can watch the video at↑",
	},
}

// Catalog resolves message keys to localized text.
type Catalog struct {
	messages map[string]map[string]string
}

// NewCatalog returns a catalog with the built-in messages.
func NewCatalog() *Catalog {
	messages := make(map[string]map[string]string, len(defaultMessages))

	for key, byLanguage := range defaultMessages {
		copied := make(map[string]string, len(byLanguage))
		for language, text := range byLanguage {
			copied[language] = text
		}

		messages[key] = copied
	}

	return &Catalog{messages: messages}
}

// LoadCatalog returns the built-in catalog overridden by entries from the
// YAML file at path. An empty path yields the built-in catalog unchanged.
func LoadCatalog(path string) (*Catalog, error) {
	catalog := NewCatalog()

	if path == "" {
		return catalog, nil
	}

	payload, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	var overrides map[string]map[string]string
	if err = yaml.Unmarshal(payload, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	for key, byLanguage := range overrides {
		if catalog.messages[key] == nil {
			catalog.messages[key] = make(map[string]string, len(byLanguage))
		}

		for language, text := range byLanguage {
			catalog.messages[key][language] = text
		}
	}

	return catalog, nil
}

// Text returns the message for the key in the given language.
// Unknown languages fall back to English; unknown keys return the key itself
// so a missing entry stays visible instead of silently vanishing.
func (c *Catalog) Text(language, key string) string {
	byLanguage, ok := c.messages[key]
	if !ok {
		return key
	}

	if text, exists := byLanguage[language]; exists {
		return text
	}

	return byLanguage[LanguageEnglish]
}
