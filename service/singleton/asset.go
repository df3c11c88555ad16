package singleton

import (
	"fmt"
	"strings"
)

// AssetDownloadURL builds the absolute download link stored on an
// asset row. Without a configured public base URL there is no stable
// absolute address, so the link stays empty and clients use the
// relative route.
func AssetDownloadURL(assetID uint64) string {
	base := strings.TrimRight(Conf.Site.BaseURL, "/")
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/v1/assets/%d/download", base, assetID)
}
