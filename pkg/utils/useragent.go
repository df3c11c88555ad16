package utils

import "strings"

const (
	DeviceTypeDesktop = "desktop"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
)

type DeviceInfo struct {
	DeviceName string
	DeviceType string
	Browser    string
}

// ParseUserAgent extracts the device fields recorded in activity logs.
// Order matters: Edge and Chrome both carry "Chrome/", Safari checks
// must exclude Chrome.
func ParseUserAgent(ua string) DeviceInfo {
	info := DeviceInfo{
		DeviceName: "Unknown Device",
		DeviceType: DeviceTypeDesktop,
		Browser:    "Unknown Browser",
	}

	switch {
	case strings.Contains(ua, "Edg/"):
		info.Browser = "Microsoft Edge"
	case strings.Contains(ua, "Chrome/"):
		info.Browser = "Google Chrome"
	case strings.Contains(ua, "Safari/"):
		info.Browser = "Safari"
	case strings.Contains(ua, "Firefox/"):
		info.Browser = "Firefox"
	}

	switch {
	case strings.Contains(ua, "Windows NT 10.0"):
		info.DeviceName = "Windows PC"
	case strings.Contains(ua, "iPhone"):
		info.DeviceName = "iPhone"
		info.DeviceType = DeviceTypeMobile
	case strings.Contains(ua, "iPad"):
		info.DeviceName = "iPad"
		info.DeviceType = DeviceTypeTablet
	case strings.Contains(ua, "Macintosh"):
		info.DeviceName = "MacBook / iMac"
	case strings.Contains(ua, "Android"):
		info.DeviceName = "Android Device"
		info.DeviceType = DeviceTypeMobile
	}

	return info
}
