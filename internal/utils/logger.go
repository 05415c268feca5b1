package utils

import (
	"strings"

	"cabreport/internal/config"

	"github.com/sirupsen/logrus"
)

// LogEvent prints a standardized log line with module/action/request_id.
// Avoid logging booking rows; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	config.GetLogger().WithFields(logrus.Fields{
		"module":     strings.ToLower(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
