//go:build !x690_debug

package x690

func debugTLV(_ string, _ ...any)   {}
func debugCodec(_ string, _ ...any) {}
