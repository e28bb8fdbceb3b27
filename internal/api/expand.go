package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// resolveFunc chases an expandable field's id to its full object.
type resolveFunc func(field, id string) (any, error)

// respondExpanded writes an object, replacing requested expandable id
// fields with their referenced objects. Requests naming fields that are
// not expandable, or that do not hold a bare id, are silently ignored.
func (s *Server) respondExpanded(w http.ResponseWriter, status int, accountID string, obj any, expandable, requested []string) {
	if len(requested) == 0 || len(expandable) == 0 {
		writeJSON(w, status, obj)
		return
	}
	resolve := func(field, id string) (any, error) {
		return s.svc.ResolveExpansion(accountID, field, id)
	}
	m, err := toMap(obj)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := expandInto(m, expandable, requested, resolve); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, m)
}

// respondExpandedList is respondExpanded for list envelopes: paths of
// the form data.<field> descend into every list member.
func (s *Server) respondExpandedList(w http.ResponseWriter, status int, accountID string, list any, expandable, requested []string) {
	var inner []string
	for _, req := range requested {
		if after, ok := strings.CutPrefix(req, "data."); ok {
			inner = append(inner, after)
		}
	}
	if len(inner) == 0 {
		writeJSON(w, status, list)
		return
	}
	resolve := func(field, id string) (any, error) {
		return s.svc.ResolveExpansion(accountID, field, id)
	}
	m, err := toMap(list)
	if err != nil {
		writeError(w, err)
		return
	}
	data, _ := m["data"].([]any)
	for _, member := range data {
		memberMap, ok := member.(map[string]any)
		if !ok {
			continue
		}
		if err := expandInto(memberMap, expandable, inner, resolve); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, status, m)
}

func toMap(obj any) (map[string]any, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("serialize for expansion: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("reshape for expansion: %w", err)
	}
	return m, nil
}

func expandInto(m map[string]any, expandable, requested []string, resolve resolveFunc) error {
	for _, field := range requested {
		if !slices.Contains(expandable, field) {
			continue
		}
		id, ok := m[field].(string)
		if !ok || id == "" {
			continue
		}
		resolved, err := resolve(field, id)
		if err != nil {
			return err
		}
		if resolved == nil {
			continue
		}
		m[field] = resolved
	}
	return nil
}
