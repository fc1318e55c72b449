package handlers

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/faheemframes/healthyfi/internal/middleware"
)

// User-facing messages. The English text is the catalog key.
const (
	msgRateLimited     = "Rate limit exceeded. Please try again later."
	msgPaymentRequired = "Payment required. Please add credits to your workspace."
	msgGatewayError    = "AI gateway error"
	msgNoSuggestions   = "No suggestions received from AI"
	msgNotConfigured   = "AI suggestions are not configured"
	msgInvalidPayload  = "Invalid request payload"
	msgScanFailed      = "Failed to analyze meal image"
	msgNotFound        = "Not found"
	msgInternal        = "Something went wrong. Please try again."
	msgInvalidID       = "Invalid id"
)

var indonesian = map[string]string{
	msgRateLimited:     "Batas permintaan terlampaui. Silakan coba lagi nanti.",
	msgPaymentRequired: "Pembayaran diperlukan. Silakan tambahkan kredit ke workspace Anda.",
	msgGatewayError:    "Terjadi kesalahan pada gateway AI",
	msgNoSuggestions:   "Tidak ada saran yang diterima dari AI",
	msgNotConfigured:   "Saran AI belum dikonfigurasi",
	msgInvalidPayload:  "Payload permintaan tidak valid",
	msgScanFailed:      "Gagal menganalisis foto makanan",
	msgNotFound:        "Tidak ditemukan",
	msgInternal:        "Terjadi kesalahan. Silakan coba lagi.",
	msgInvalidID:       "ID tidak valid",
}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range indonesian {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Indonesian, key, text)
	}
	return b
}

// printer localizes messages into the locale resolved by the I18N middleware.
func printer(r *http.Request) *message.Printer {
	tag := language.English
	if middleware.LocaleFromContext(r.Context()) == "id" {
		tag = language.Indonesian
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}
