// Resolves the external converter at startup so a misconfigured host is
// an operator-visible boot failure, never a per-request surprise.

package config

import (
	"log"

	"github.com/mfluker/aod-onboarding-pdf/utils/soffice"
)

// InitConverter builds the LibreOffice runner and fails fast when the
// binary does not resolve, same policy as the other infra initializers.
func InitConverter(cfg *Config) *soffice.LibreOffice {
	conv := soffice.New(cfg.ConverterBin, ConvertTimeoutDuration)
	if err := conv.Available(); err != nil {
		log.Fatalf("[converter] %v (set converter_bin or install LibreOffice)", err)
	}
	log.Printf("[converter] using %s (timeout %s)", cfg.ConverterBin, ConvertTimeoutDuration)
	return conv
}
