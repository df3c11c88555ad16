package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	cases := []struct {
		ua     string
		device string
		typ    string
		browser string
	}{
		{
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			device:  "Windows PC",
			typ:     DeviceTypeDesktop,
			browser: "Google Chrome",
		},
		{
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0",
			device:  "Windows PC",
			typ:     DeviceTypeDesktop,
			browser: "Microsoft Edge",
		},
		{
			ua:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
			device:  "MacBook / iMac",
			typ:     DeviceTypeDesktop,
			browser: "Safari",
		},
		{
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			device:  "iPhone",
			typ:     DeviceTypeMobile,
			browser: "Safari",
		},
		{
			ua:      "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			device:  "iPad",
			typ:     DeviceTypeTablet,
			browser: "Safari",
		},
		{
			ua:      "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36",
			device:  "Android Device",
			typ:     DeviceTypeMobile,
			browser: "Google Chrome",
		},
		{
			ua:      "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
			device:  "Unknown Device",
			typ:     DeviceTypeDesktop,
			browser: "Firefox",
		},
		{
			ua:      "curl/8.4.0",
			device:  "Unknown Device",
			typ:     DeviceTypeDesktop,
			browser: "Unknown Browser",
		},
	}

	for _, c := range cases {
		info := ParseUserAgent(c.ua)
		assert.Equal(t, c.device, info.DeviceName, c.ua)
		assert.Equal(t, c.typ, info.DeviceType, c.ua)
		assert.Equal(t, c.browser, info.Browser, c.ua)
	}
}
