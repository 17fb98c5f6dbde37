package transfer

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"
)

// newTransport clones the default transport and routes it through proxyURL, if any.
func newTransport(proxyURL *url.URL) (http.RoundTripper, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL == nil {
		return t, nil
	}

	switch proxyURL.Scheme {
	case "http", "https":
		t.Proxy = http.ProxyURL(proxyURL)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("proxy %s: %w", proxyURL.Redacted(), err)
		}
		t.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			t.DialContext = cd.DialContext
		} else {
			t.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	default:
		return nil, fmt.Errorf("proxy %s: unsupported scheme %q", proxyURL.Redacted(), proxyURL.Scheme)
	}

	return t, nil
}
