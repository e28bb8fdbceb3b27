package models

// List is the envelope returned by every collection endpoint.
type List[T any] struct {
	Object     string `json:"object"`
	Data       []T    `json:"data"`
	HasMore    bool   `json:"has_more"`
	URL        string `json:"url"`
	TotalCount *int   `json:"total_count,omitempty"`
}

// NewList builds a list envelope. Data is never null on the wire.
func NewList[T any](url string, data []T, hasMore bool) *List[T] {
	if data == nil {
		data = []T{}
	}
	return &List[T]{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		URL:     url,
	}
}

// EmptyList is a list envelope with no members.
func EmptyList[T any](url string) *List[T] {
	return NewList[T](url, nil, false)
}
