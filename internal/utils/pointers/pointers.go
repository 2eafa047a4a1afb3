package pointers

// Uint64Ptr is used for optional amounts such as a transaction fee.
func Uint64Ptr(v uint64) *uint64 {
	return &v
}

// Uint32Ptr is used for optional block heights.
func Uint32Ptr(v uint32) *uint32 {
	return &v
}
