package query

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iudanet/livequery/internal/models"
	"github.com/iudanet/livequery/pkg/api"
)

// fakeStore выполняет query_many над объектами в памяти так, как это делает сервер:
// фильтр по выражению, сортировка по ключам, ограничение limit
type fakeStore struct {
	err      error
	before   func()
	objects  []*models.Object
	requests []api.QueryManyRequest
	mu       sync.Mutex
}

func (f *fakeStore) Request(ctx context.Context, method, path string, body, result any) error {
	if f.before != nil {
		f.before()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if path != api.PathQueryMany {
		return fmt.Errorf("unexpected path %s", path)
	}
	req, ok := body.(api.QueryManyRequest)
	if !ok {
		return fmt.Errorf("unexpected body %T", body)
	}
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}

	// Запрос проходит через JSON, как по сети
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	var wire struct {
		Query map[string]any `json:"query"`
		Sort  []api.SortKey  `json:"sort"`
		Limit int            `json:"limit"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var matched []map[string]any
	for _, obj := range f.objects {
		flat := flatten(obj)
		if matches(flat, wire.Query) {
			matched = append(matched, flat)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		for _, key := range wire.Sort {
			c := compareValues(matched[i][key.Field], matched[j][key.Field])
			if c != 0 {
				return c*key.Order < 0
			}
		}
		return false
	})
	if len(matched) > wire.Limit {
		matched = matched[:wire.Limit]
	}

	out, err := json.Marshal(matched)
	if err != nil {
		return err
	}
	return json.Unmarshal(out, result)
}

func (f *fakeStore) lastRequest() api.QueryManyRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeStore) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func flatten(obj *models.Object) map[string]any {
	data, _ := json.Marshal(obj)
	var flat map[string]any
	_ = json.Unmarshal(data, &flat)
	return flat
}

func matches(obj map[string]any, query map[string]any) bool {
	for key, cond := range query {
		switch key {
		case "$and", "$or":
			parts, _ := cond.([]any)
			found := false
			for _, p := range parts {
				sub, _ := p.(map[string]any)
				ok := matches(obj, sub)
				if key == "$and" && !ok {
					return false
				}
				found = found || ok
			}
			if key == "$or" && !found {
				return false
			}
		default:
			ops, isOps := cond.(map[string]any)
			if !isOps {
				if compareValues(obj[key], cond) != 0 {
					return false
				}
				continue
			}
			for op, arg := range ops {
				c := compareValues(obj[key], arg)
				switch op {
				case "$lt":
					if c >= 0 {
						return false
					}
				case "$gt":
					if c <= 0 {
						return false
					}
				case "$eq":
					if c != 0 {
						return false
					}
				default:
					panic("unsupported operator " + op)
				}
			}
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	default:
		if a == nil && b == nil {
			return 0
		}
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func obj(id string, ts float64, topic string) *models.Object {
	return &models.Object{
		ID:        id,
		OwnerID:   "owner",
		Timestamp: ts,
		Fields:    map[string]any{"topic": topic},
	}
}
