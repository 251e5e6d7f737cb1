package registry

import "github.com/zachzurn/flexml/style"

// ExpandRawStyles is the canonical algorithm: iterate raw entries in
// reverse (so later entries win), resolving composites to their member
// atomics and threading forwarder values through positional >-segments.
// The accumulator and forwarder list are reversed once at the end so the
// result reflects first-use source order.
func (r *Registry) ExpandRawStyles(entries []RawStyle) ([]style.AtomicStyle, []style.StyleId) {
	var result []style.AtomicStyle
	assigned := make(map[style.StyleId]int) // atomic id -> index in result
	var forwarders []style.StyleId
	forwarderSeen := make(map[style.StyleId]bool)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		name := e.Name
		if len(name) > 0 && name[0] == '>' {
			name = name[1:]
			fid := r.internName(name)
			if r.IsAtomic(fid) && !forwarderSeen[fid] {
				forwarderSeen[fid] = true
				forwarders = append(forwarders, fid)
			}
			continue
		}

		id := r.internName(name)

		if r.IsAtomic(id) {
			if _, ok := assigned[id]; ok {
				continue
			}
			v := r.applyAtomic(id, e.Value, e.HasValue)
			assigned[id] = len(result)
			result = append(result, style.AtomicStyle{Id: id, Value: v})
			continue
		}

		def := r.definitions[id]
		if def == nil {
			continue
		}
		// Append every atomic entry from the definition not already
		// assigned, walking the stored definition in reverse.
		for j := len(def.atomics) - 1; j >= 0; j-- {
			as := def.atomics[j]
			if _, ok := assigned[as.Id]; ok {
				continue
			}
			assigned[as.Id] = len(result)
			result = append(result, as)
		}

		if e.HasValue && len(def.forwarders) > 0 {
			segments := splitForward(e.Value)
			for segIdx, seg := range segments {
				if segIdx >= len(def.forwarders) {
					break
				}
				fid := def.forwarders[segIdx]
				if !r.IsAtomic(fid) {
					continue
				}
				v := r.applyAtomic(fid, seg, true)
				if idx, ok := assigned[fid]; ok {
					result[idx] = style.AtomicStyle{Id: fid, Value: v}
				} else {
					assigned[fid] = len(result)
					result = append(result, style.AtomicStyle{Id: fid, Value: v})
				}
			}
		}
	}

	reverseAtomics(result)
	reverseIds(forwarders)
	return result, forwarders
}

func splitForward(raw string) []string {
	var out []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '>' {
			out = append(out, raw[start:i])
			start = i + 1
		}
	}
	out = append(out, raw[start:])
	return out
}

func reverseAtomics(s []style.AtomicStyle) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseIds(s []style.StyleId) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
