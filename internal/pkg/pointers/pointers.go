package pointers

func Int64(v int64) *int64 { return &v }

// Int64Value dereferences p, returning 0 for nil.
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
