package scraper

import (
	"testing"

	tls "github.com/refraction-networking/utls"
)

func TestChromeHelloSpecPinsHTTP1(t *testing.T) {
	if !haveChromeSpec {
		t.Fatal("chrome hello spec failed to build at init")
	}

	var alpn *tls.ALPNExtension
	for _, ext := range chromeH1Spec.Extensions {
		if a, ok := ext.(*tls.ALPNExtension); ok {
			alpn = a
			break
		}
	}
	if alpn == nil {
		t.Fatal("hello spec has no ALPN extension")
	}
	if len(alpn.AlpnProtocols) != 1 || alpn.AlpnProtocols[0] != "http/1.1" {
		t.Errorf("ALPN protocols = %v, want [http/1.1] only", alpn.AlpnProtocols)
	}
}
