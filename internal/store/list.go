package store

// ListParams are the cursor pagination options accepted by every list
// endpoint.
type ListParams struct {
	Limit         int
	StartingAfter string
	EndingBefore  string
}

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// Resolver looks up a cursor id and raises the resource's not-found error
// when the id is unknown. param names the cursor parameter for the error.
type Resolver[T Keyed] func(id, param string) (T, error)

// ApplyListOptions slices an already-filtered, insertion-ordered sequence
// according to the cursor options and reports whether records remain
// beyond the returned page in the requested direction.
//
// starting_after returns up to limit records strictly after the cursor in
// original order; ending_before returns up to limit records strictly
// before it, restored to forward order. When both are supplied
// starting_after is authoritative.
func ApplyListOptions[T Keyed](records []T, params ListParams, resolve Resolver[T]) ([]T, bool, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	switch {
	case params.StartingAfter != "":
		cursor, err := resolve(params.StartingAfter, "starting_after")
		if err != nil {
			return nil, false, err
		}
		start := len(records)
		for i, r := range records {
			if r.ObjectID() == cursor.ObjectID() {
				start = i + 1
				break
			}
		}
		rest := records[start:]
		if len(rest) > limit {
			return append([]T{}, rest[:limit]...), true, nil
		}
		return append([]T{}, rest...), false, nil

	case params.EndingBefore != "":
		cursor, err := resolve(params.EndingBefore, "ending_before")
		if err != nil {
			return nil, false, err
		}
		end := 0
		for i, r := range records {
			if r.ObjectID() == cursor.ObjectID() {
				end = i
				break
			}
		}
		before := records[:end]
		if len(before) > limit {
			return append([]T{}, before[len(before)-limit:]...), true, nil
		}
		return append([]T{}, before...), false, nil

	default:
		if len(records) > limit {
			return append([]T{}, records[:limit]...), true, nil
		}
		return append([]T{}, records...), false, nil
	}
}
