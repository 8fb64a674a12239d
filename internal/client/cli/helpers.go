package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/livequery/internal/models"
)

const defaultLimit = 20

var objectTmpl = template.Must(template.New("object").Funcs(template.FuncMap{
	"timestamp": formatTimestamp,
	"fields":    formatFields,
}).Parse(objectTemplate))

// parseQuery разбирает JSON выражение запроса
func parseQuery(arg string) (models.Query, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return models.Query{}, nil
	}

	var expr models.Query
	if err := json.Unmarshal([]byte(arg), &expr); err != nil {
		return nil, fmt.Errorf("query must be a JSON object: %w", err)
	}
	if expr == nil {
		expr = models.Query{}
	}
	return expr, nil
}

// parseObject разбирает JSON объект
func parseObject(arg string) (*models.Object, error) {
	var obj models.Object
	if err := json.Unmarshal([]byte(arg), &obj); err != nil {
		return nil, fmt.Errorf("object must be a JSON object: %w", err)
	}
	return &obj, nil
}

// parseLimit читает необязательный лимит из args[idx]
func parseLimit(args []string, idx int) (int, error) {
	if len(args) <= idx {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(args[idx])
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer, got %q", args[idx])
	}
	return limit, nil
}

func formatTimestamp(ms float64) string {
	return time.UnixMicro(int64(ms * 1000)).UTC().Format(time.RFC3339Nano)
}

func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return "{}"
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprintf("%v", fields)
	}
	return string(data)
}
