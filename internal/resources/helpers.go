package resources

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

func newID(prefix string) string {
	return prefix + "_" + ulid.Make().String()
}

func fingerprint() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// Deleted is the stub returned after a resource is removed.
type Deleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// Amount decodes a JSON integer or a numeric string.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*a = Amount(n)
	return nil
}

// FlexBool decodes a JSON boolean or the strings "true"/"false", and
// records whether the field was present at all.
type FlexBool struct {
	Present bool
	Value   bool
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	f.Present = true
	f.Value = v
	return nil
}

// coerceMetadata stringifies arbitrary metadata values the way the
// upstream API does. Numbers lose their exponent form, never a ".0".
func coerceMetadata(in map[string]any) models.Metadata {
	out := make(models.Metadata, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}

func setCount[T any](l *models.List[T], n int) {
	l.TotalCount = &n
}

// resolver adapts a store into the cursor resolver pagination expects,
// mapping unknown cursor ids onto the resource's not-found error.
func resolver[T store.Keyed](d *store.Data[T], accountID, kind string) store.Resolver[T] {
	return func(id, param string) (T, error) {
		rec, ok := d.Get(accountID, id)
		if !ok {
			var zero T
			return zero, apierr.NotFound(kind, id, param)
		}
		return rec, nil
	}
}
