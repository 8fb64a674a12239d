package models

// Query представляет декларативное выражение запроса
// (булева композиция сравнений полей в стиле MongoDB).
type Query map[string]any

// Операторы сравнения
const (
	OpLT = "$lt"
	OpGT = "$gt"
	OpEQ = "$eq"
)

// And объединяет выражения через $and
func And(parts ...Query) Query {
	items := make([]any, 0, len(parts))
	for _, p := range parts {
		items = append(items, p)
	}
	return Query{"$and": items}
}

// Or объединяет выражения через $or
func Or(parts ...Query) Query {
	items := make([]any, 0, len(parts))
	for _, p := range parts {
		items = append(items, p)
	}
	return Query{"$or": items}
}

// Compare строит выражение {field: {op: value}}
func Compare(field, op string, value any) Query {
	return Query{field: map[string]any{op: value}}
}
