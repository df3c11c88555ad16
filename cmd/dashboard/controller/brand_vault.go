package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List brand vault
// @Summary List the client brand vault grouped by section
// @Security BearerAuth
// @Schemes
// @Description List the client brand vault grouped by section
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.VaultSectionView]
// @Router /brand-vault [get]
func listBrandVault(c *gin.Context) ([]model.VaultSectionView, error) {
	user := currentUser(c)

	var rows []model.VaultEntryInfo
	err := singleton.DB.Model(&model.BrandVaultEntry{}).
		Select("brand_vault_entries.*, s.name AS section_name, s.slug AS section_slug, s.order_index AS order_index").
		Joins("INNER JOIN brand_vault_sections AS s ON s.id = brand_vault_entries.section_id").
		Where("brand_vault_entries.client_id = ?", user.ClientID).
		Order("s.order_index, brand_vault_entries.id").
		Scan(&rows).Error
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return model.GroupVaultEntries(rows), nil
}
