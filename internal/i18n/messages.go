package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales. Farsi is the secondary display language of the app.
const (
	LocaleEnglish = "en"
	LocaleFarsi   = "fa"
)

// ResolveLocale picks the response locale from the lang query parameter or
// the Accept-Language header, defaulting to English.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleEnglish
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	if lang := normalizeLocale(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}
	return LocaleEnglish
}

func normalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	// Accept-Language may carry a quality list; the first tag wins.
	if idx := strings.IndexAny(raw, ",;"); idx >= 0 {
		raw = raw[:idx]
	}
	switch {
	case strings.HasPrefix(raw, "fa"):
		return LocaleFarsi
	case strings.HasPrefix(raw, "en"):
		return LocaleEnglish
	default:
		return ""
	}
}

// T translates a message key for the locale. Unknown keys fall back to the
// English catalog and finally to the key itself.
func T(locale, key string) string {
	if messages, ok := catalogs[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[LocaleEnglish][key]; ok {
		return msg
	}
	return key
}

var catalogs = map[string]map[string]string{
	LocaleEnglish: {
		"error.bad_request":            "invalid request",
		"error.not_found":              "not found",
		"error.menu_fetch_failed":      "failed to load the menu",
		"error.item_not_found":         "menu item not found",
		"error.category_not_found":     "category not found",
		"error.search_failed":          "search failed",
		"error.review_invalid":         "review must include a name and a comment",
		"error.rating_invalid":         "rating must be between 1 and 5",
		"error.review_fetch_failed":    "failed to load reviews",
		"error.review_save_failed":     "failed to save the review",
		"error.cart_item_invalid":      "invalid cart item",
		"error.cart_update_failed":     "failed to update the cart",
		"error.checkout_empty_cart":    "your cart is empty",
		"error.checkout_failed":        "checkout failed",
		"error.receipt_not_found":      "receipt not found",
		"error.too_many_requests":      "too many requests, try again in %d seconds",
		"error.rate_limited":           "too many requests, try again in %d seconds",
		"error.rate_limit_unavailable": "service temporarily unavailable",
		"error.internal":               "internal error",
	},
	LocaleFarsi: {
		"error.bad_request":            "درخواست نامعتبر است",
		"error.not_found":              "یافت نشد",
		"error.menu_fetch_failed":      "بارگذاری منو ناموفق بود",
		"error.item_not_found":         "آیتم منو یافت نشد",
		"error.category_not_found":     "دسته‌بندی یافت نشد",
		"error.search_failed":          "جستجو ناموفق بود",
		"error.review_invalid":         "نظر باید شامل نام و متن باشد",
		"error.rating_invalid":         "امتیاز باید بین ۱ تا ۵ باشد",
		"error.review_fetch_failed":    "بارگذاری نظرات ناموفق بود",
		"error.review_save_failed":     "ثبت نظر ناموفق بود",
		"error.cart_item_invalid":      "آیتم سبد خرید نامعتبر است",
		"error.cart_update_failed":     "به‌روزرسانی سبد خرید ناموفق بود",
		"error.checkout_empty_cart":    "سبد خرید شما خالی است",
		"error.checkout_failed":        "پرداخت ناموفق بود",
		"error.receipt_not_found":      "رسید یافت نشد",
		"error.too_many_requests":      "درخواست‌های بیش از حد، %d ثانیه دیگر تلاش کنید",
		"error.rate_limited":           "درخواست‌های بیش از حد، %d ثانیه دیگر تلاش کنید",
		"error.rate_limit_unavailable": "سرویس موقتاً در دسترس نیست",
		"error.internal":               "خطای داخلی",
	},
}

// Sprintf translates a key and formats it with args.
func Sprintf(locale, key string, args ...interface{}) string {
	msg := T(locale, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
