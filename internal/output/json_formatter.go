package output

import (
	"encoding/json"

	"github.com/callcenter/cancel-advisor/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.CancellationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
