package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath   = "path"
	KeyURL    = "url"
	KeyRemote = "remote"
	KeyRepo   = "repository"
	KeyRef    = "ref"
	KeyError  = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr        { return slog.String(KeyURL, u) }
func Remote(r string) slog.Attr     { return slog.String(KeyRemote, r) }
func Repository(r string) slog.Attr { return slog.String(KeyRepo, r) }
func Ref(r string) slog.Attr        { return slog.String(KeyRef, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
