// Package cache provides a generic, thread-safe cache with least recently
// used eviction.
//
//	outlines := cache.New[outlineKey, *GlyphOutline](4096)
//	o := outlines.GetOrCreate(key, func() *GlyphOutline { return extract(key) })
package cache
