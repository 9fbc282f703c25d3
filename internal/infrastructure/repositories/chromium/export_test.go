package chromium

// AllocatorOptions exports allocatorOptions for testing.
var AllocatorOptions = allocatorOptions //nolint:gochecknoglobals // test export
