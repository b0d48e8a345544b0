package gateway

import (
	"net/url"
	"strings"
)

// ResolveFileURL turns a stored file reference into a URL a browser can load. When a
// public file base is configured, references that point at a loopback host, use file:,
// or carry no scheme are moved onto it.
func ResolveFileURL(raw, publicBase string) string {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return ""
	}
	publicBase = strings.TrimSpace(publicBase)
	if publicBase == "" {
		return ref
	}

	base, err := url.Parse(publicBase)
	if err != nil || base.Host == "" {
		return joinFileURL(publicBase, ref)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return joinFileURL(publicBase, ref)
	}
	if u.Host == "" && u.Scheme == "" {
		return joinFileURL(publicBase, ref)
	}

	switch {
	case u.Scheme == "", u.Scheme == "file":
		u.Scheme = base.Scheme
		u.Host = base.Host
	case isLoopback(u.Hostname()):
		u.Scheme = base.Scheme
		u.Host = base.Host
	}
	return u.String()
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}

func joinFileURL(base, ref string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
