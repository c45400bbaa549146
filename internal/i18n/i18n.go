package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 支持的语言
const (
	LocaleZhCN = "zh-CN"
	LocaleEnUS = "en-US"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleZhCN

// ResolveLocale 解析请求语言，优先级: query 参数 lang > Accept-Language 头 > 默认
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

// T 返回指定语言的文案，找不到时回退默认语言，再找不到返回 key 本身
func T(locale, key string) string {
	if msgs, ok := messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := messages[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 带格式化参数的翻译
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "zh", "zh-cn", "zh-hans", "zh-hans-cn":
		return LocaleZhCN
	case "en", "en-us", "en-gb":
		return LocaleEnUS
	}
	return ""
}
