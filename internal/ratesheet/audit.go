package ratesheet

// ZeroRates lists the monetary entries that resolved to zero. A zero usually
// means the text carried no number ("TBD", "call"), and pricing would
// silently charge nothing for the item.
func (s *Sheet) ZeroRates() []string {
	var out []string
	for _, e := range s.entries {
		if e.monetary && e.value == 0 {
			out = append(out, e.path)
		}
	}
	return out
}
