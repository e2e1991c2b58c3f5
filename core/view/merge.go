package view

// merge combines request state with caller variables. Caller keys win.
// Neither input is modified.
func (m MergeStrategy) merge(state, vars map[string]any) map[string]any {
	if m == MergeShallow {
		out := make(map[string]any, len(state)+len(vars))
		for k, v := range state {
			out[k] = v
		}
		for k, v := range vars {
			out[k] = v
		}
		return out
	}
	return mergeDeep(state, vars)
}

// mergeDeep returns a new map; nested maps present on both sides are merged
// recursively into fresh maps so the request state is never aliased for writing.
func mergeDeep(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := out[k].(map[string]any); ok {
				out[k] = mergeDeep(dm, sm)
				continue
			}
		}
		out[k] = sv
	}
	return out
}
