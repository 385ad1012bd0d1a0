package text

// CachedTemplates reports how many templates are cached.
func CachedTemplates() int { return int(cachedTemplate.Load()) }
