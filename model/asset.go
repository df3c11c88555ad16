package model

import "code.cloudfoundry.org/bytefmt"

// Asset is one file in a client's library.
type Asset struct {
	Common
	ClientID     uint64 `json:"client_id" gorm:"index"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	StorageType  string `json:"storage_type"`
	SizeBytes    uint64 `json:"size_bytes"`
	MimeType     string `json:"mime_type"`
	FilePath     string `json:"-"`
	DriveFileID  string `json:"drive_file_id,omitempty"`
	WebViewLink  string `json:"web_view_link,omitempty"`
	DownloadLink string `json:"download_link,omitempty"`
	UploadedBy   uint64 `json:"uploaded_by"`
	UpdatedBy    uint64 `json:"updated_by"`
}

// SizeHuman renders the asset size the way the library page shows it.
func (a *Asset) SizeHuman() string {
	return bytefmt.ByteSize(a.SizeBytes)
}

type AssetView struct {
	Asset
	Size string `json:"size"`
}

type AssetCategoryView struct {
	Category string      `json:"category"`
	Assets   []AssetView `json:"assets"`
}

// GroupAssetsByCategory buckets assets per category in first-occurrence
// order, attaching the humanized size to each row.
func GroupAssetsByCategory(assets []Asset) []AssetCategoryView {
	categories := make([]AssetCategoryView, 0, len(assets))
	index := make(map[string]int)

	for _, a := range assets {
		i, ok := index[a.Category]
		if !ok {
			i = len(categories)
			index[a.Category] = i
			categories = append(categories, AssetCategoryView{Category: a.Category})
		}
		categories[i].Assets = append(categories[i].Assets, AssetView{
			Asset: a,
			Size:  a.SizeHuman(),
		})
	}
	return categories
}
