package commands

// InjectBaseHref exports injectBaseHref for testing.
var InjectBaseHref = injectBaseHref //nolint:gochecknoglobals // test export
