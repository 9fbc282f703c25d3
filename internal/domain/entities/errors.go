package entities

import "errors"

var (
	// ErrInvalidReference means the URL is unparseable or names an unsupported host.
	ErrInvalidReference = errors.New("invalid repository reference")
	// ErrUpstreamFetch means a source-host call did not succeed.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrModelCall means the language-model endpoint failed or answered nothing.
	ErrModelCall = errors.New("model call failed")
	// ErrRenderPage means the headless browser could not produce the page.
	ErrRenderPage = errors.New("page rendering failed")
	// ErrInvalidRequest means an inbound request body could not be bound.
	ErrInvalidRequest = errors.New("invalid request")
)
