package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// prettyJSON não escapa HTML para manter legíveis as menções como <#C123>
var prettyJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// PrettyJson serializa o valor com indentação. Bytes são tratados como JSON já serializado.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var value any
		if err := prettyJSON.Unmarshal(raw, &value); err != nil {
			logrus.WithError(err).Warn("Erro ao interpretar JSON")
			return string(raw)
		}
		in = value
	}

	out, err := prettyJSON.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar JSON")
		return ""
	}

	return string(out)
}
