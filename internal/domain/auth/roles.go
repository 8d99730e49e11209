package auth

import "encoding/json"

// RoleList is a defensively-normalized role collection.
//
// The backend's role field is not reliably list-shaped: it has been observed
// absent, null, a single string, and a list containing non-strings. Rather
// than checking shape at every use site, normalization happens once at the
// decode boundary and malformed input degrades to an empty list.
type RoleList []Role

// Contains reports whether the list includes the given role.
func (r RoleList) Contains(role Role) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts the backend's loose role shapes. Malformed or
// non-list input yields an empty list, never an error.
func (r *RoleList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = nil
		return nil
	}
	*r = NormalizeRoles(raw)
	return nil
}

// NormalizeRoles converts an untyped role collection into a RoleList.
// Absent, malformed, or non-list input normalizes to an empty list.
// A bare string is treated as a single-element list since older backend
// responses used that shape.
func NormalizeRoles(raw any) RoleList {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return RoleList{Role(v)}
	case []string:
		roles := make(RoleList, 0, len(v))
		for _, s := range v {
			if s != "" {
				roles = append(roles, Role(s))
			}
		}
		return roles
	case []any:
		roles := make(RoleList, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				roles = append(roles, Role(s))
			}
		}
		return roles
	default:
		return nil
	}
}
