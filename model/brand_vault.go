package model

const (
	VaultEntryStatusDraft     = "draft"
	VaultEntryStatusPublished = "published"
)

type BrandVaultSection struct {
	Common
	Name       string `json:"name"`
	Slug       string `json:"slug" gorm:"uniqueIndex"`
	OrderIndex int    `json:"order_index"`
}

type BrandVaultEntry struct {
	Common
	ClientID  uint64 `json:"client_id" gorm:"index"`
	SectionID uint64 `json:"section_id"`
	Version   int    `json:"version"`
	Status    string `json:"status"`
	Content   string `json:"content" gorm:"type:longtext"`
	UpdatedBy uint64 `json:"updated_by"`
}

// VaultEntryInfo is an entry denormalized with its section.
type VaultEntryInfo struct {
	BrandVaultEntry
	SectionName string `json:"section_name"`
	SectionSlug string `json:"section_slug"`
	OrderIndex  int    `json:"order_index"`
}

type VaultSectionView struct {
	SectionID   uint64            `json:"section_id"`
	SectionName string            `json:"section_name"`
	SectionSlug string            `json:"section_slug"`
	Entries     []BrandVaultEntry `json:"entries"`
}

// GroupVaultEntries buckets entries per section, keeping input order.
// Rows arrive already sorted by section OrderIndex.
func GroupVaultEntries(rows []VaultEntryInfo) []VaultSectionView {
	sections := make([]VaultSectionView, 0, len(rows))
	index := make(map[uint64]int)

	for _, row := range rows {
		i, ok := index[row.SectionID]
		if !ok {
			i = len(sections)
			index[row.SectionID] = i
			sections = append(sections, VaultSectionView{
				SectionID:   row.SectionID,
				SectionName: row.SectionName,
				SectionSlug: row.SectionSlug,
			})
		}
		sections[i].Entries = append(sections[i].Entries, row.BrandVaultEntry)
	}
	return sections
}
