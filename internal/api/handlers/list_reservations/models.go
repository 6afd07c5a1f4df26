package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"
)

// Значения по умолчанию для параметров выборки
const (
	defaultState = "ALL"
	defaultFrom  = 0
	defaultSize  = 10
)

// ListQuery разобранные query параметры выборки
type ListQuery struct {
	State string
	From  int
	Size  int
}

// ParseListQuery разбирает query параметры state, from и size
// Отсутствующие параметры получают значения по умолчанию
func ParseListQuery(values url.Values) (*ListQuery, error) {
	query := &ListQuery{
		State: defaultState,
		From:  defaultFrom,
		Size:  defaultSize,
	}

	if state := values.Get("state"); state != "" {
		query.State = state
	}

	if raw := values.Get("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		query.From = from
	}

	if raw := values.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid size: %w", err)
		}
		query.Size = size
	}

	return query, nil
}
