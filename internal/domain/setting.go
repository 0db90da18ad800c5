package domain

import (
	"strconv"
	"time"
)

// SettingKey identifica uma configuração da plataforma.
type SettingKey string

const (
	SettingColetasEnabled       SettingKey = "coletas_enabled"
	SettingChatEnabled          SettingKey = "chat_enabled"
	SettingNotificationsEnabled SettingKey = "notifications_enabled"
	SettingMaxColetasPerDay     SettingKey = "max_coletas_per_day"
)

// SettingKind é o tipo do valor armazenado como texto.
type SettingKind int

const (
	KindBool SettingKind = iota
	KindInt
)

// Limites de max_coletas_per_day.
const (
	DefaultMaxColetasPerDay = 10
	MinColetasPerDay        = 1
	MaxColetasPerDay        = 100
)

// knownSettings é o esquema das chaves conhecidas.
var knownSettings = map[SettingKey]SettingKind{
	SettingColetasEnabled:       KindBool,
	SettingChatEnabled:          KindBool,
	SettingNotificationsEnabled: KindBool,
	SettingMaxColetasPerDay:     KindInt,
}

// Kind devolve o tipo da chave e se ela é conhecida.
func (k SettingKey) Kind() (SettingKind, bool) {
	kind, ok := knownSettings[k]
	return kind, ok
}

// PlatformSetting é uma linha de platform_settings.
type PlatformSetting struct {
	Key         SettingKey `json:"key"`
	Value       string     `json:"value"`
	Description string     `json:"description"`
	UpdatedBy   *string    `json:"updated_by"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FeatureFlags é a visão tipada das configurações, consultada pelas regras de negócio.
// Valores ausentes ou inválidos resultam em funcionalidade desabilitada.
type FeatureFlags struct {
	ColetasEnabled       bool `json:"coletas_enabled"`
	ChatEnabled          bool `json:"chat_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
	MaxColetasPerDay     int  `json:"max_coletas_per_day"`
}

// FlagsFromSettings monta o registro tipado a partir das linhas armazenadas.
func FlagsFromSettings(settings []PlatformSetting) FeatureFlags {
	values := make(map[SettingKey]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	flags := FeatureFlags{
		ColetasEnabled:       values[SettingColetasEnabled] == "true",
		ChatEnabled:          values[SettingChatEnabled] == "true",
		NotificationsEnabled: values[SettingNotificationsEnabled] == "true",
		MaxColetasPerDay:     DefaultMaxColetasPerDay,
	}
	if n, err := strconv.Atoi(values[SettingMaxColetasPerDay]); err == nil && n >= MinColetasPerDay {
		flags.MaxColetasPerDay = n
	}
	return flags
}

// NormalizeSettingValue valida o valor bruto conforme o tipo da chave e devolve a
// forma canônica armazenada. O segundo retorno é false para chave desconhecida;
// o erro descreve um valor inválido para uma chave conhecida.
func NormalizeSettingValue(key SettingKey, raw string) (string, bool, error) {
	kind, ok := key.Kind()
	if !ok {
		return "", false, nil
	}

	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", true, errInvalidSetting(key, "deve ser true ou false")
		}
		return strconv.FormatBool(b), true, nil
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < MinColetasPerDay || n > MaxColetasPerDay {
			return "", true, errInvalidSetting(key, "deve ser um inteiro entre 1 e 100")
		}
		return strconv.Itoa(n), true, nil
	}
}

// InvalidSettingError descreve um valor incompatível com o tipo da chave.
type InvalidSettingError struct {
	Key    SettingKey
	Reason string
}

func (e *InvalidSettingError) Error() string {
	return "valor inválido para " + string(e.Key) + ": " + e.Reason
}

func errInvalidSetting(key SettingKey, reason string) error {
	return &InvalidSettingError{Key: key, Reason: reason}
}
