package bencode

// Detach returns a tree with no remaining borrowed spans, suitable for
// outliving the buffer it was decoded from. Containers are rebuilt
// recursively; borrowed byte strings are copied into owned storage while
// already-owned strings are carried over as-is. Detach is total and never
// fails.
func (v Value) Detach() Value {
	switch v.kind {
	case KindStr:
		return StrValue(v.str.Detach())
	case KindList:
		l := make(List, len(v.list))
		for i := range v.list {
			l[i] = v.list[i].Detach()
		}
		return Value{kind: KindList, list: l}
	case KindDict:
		d := &Dict{entries: make([]dictEntry, len(v.dict.entries))}
		for i := range v.dict.entries {
			e := &v.dict.entries[i]
			d.entries[i] = dictEntry{key: e.key.Detach(), val: e.val.Detach()}
		}
		return Value{kind: KindDict, dict: d}
	default:
		return v
	}
}
