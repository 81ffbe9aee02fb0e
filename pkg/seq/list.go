package seq

// ListOptions controls which entries List returns.
type ListOptions struct {
	// IncludeObsolete includes entries flagged obsolete.
	IncludeObsolete bool

	// ShowDiscrete lists the value entries of discrete families instead of
	// their generic roots.
	ShowDiscrete bool
}

// List returns the entries in key order for browsing. Discrete families
// are shown either collapsed (the generic root only) or expanded (the value
// entries only), never both. A discrete family without value entries keeps
// its root in the expanded view so it is not lost from the listing.
func (r *Registry) List(opts ListOptions) []Entry {
	var out []Entry
	r.Each(func(e Entry) bool {
		if e.Obsolete() && !opts.IncludeObsolete {
			return true
		}
		if e.Flags.Has(FlagDiscrete) {
			switch {
			case e.IsGenericFallback():
				if opts.ShowDiscrete && r.ValueCount(e.Key) > 0 {
					return true
				}
			case !opts.ShowDiscrete:
				return true
			}
		}
		out = append(out, e)
		return true
	})
	return out
}
