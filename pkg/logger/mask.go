package logger

import (
	"go.uber.org/zap"

	"github.com/troikatech/chat-probe/pkg/utils"
)

// MaskSecret creates a zap field that hides all but the tail of a credential
func MaskSecret(key, secret string) zap.Field {
	return zap.String(key, utils.MaskSecret(secret))
}
