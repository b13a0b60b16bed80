package frontend

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
)

// NewDevProxy forwards non-API traffic to a running frontend dev server.
func NewDevProxy(target string) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse dev server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("dev server url %q must be absolute", target)
	}

	proxy := httputil.NewSingleHostReverseProxy(u)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Log.Errorw("dev server unreachable", "target", target, "uri", r.RequestURI, "error", err)
		w.WriteHeader(http.StatusBadGateway)
	}

	logger.Log.Infow("proxying frontend to dev server", "target", target)
	return proxy, nil
}
