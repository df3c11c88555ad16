package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-uuid"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List assets
// @Summary List the client asset library grouped by category
// @Security BearerAuth
// @Schemes
// @Description List the client asset library grouped by category
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.AssetCategoryView]
// @Router /assets [get]
func listAssets(c *gin.Context) ([]model.AssetCategoryView, error) {
	var assets []model.Asset
	err := singleton.DB.Where("client_id = ?", currentUser(c).ClientID).
		Order("category, id").Find(&assets).Error
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return model.GroupAssetsByCategory(assets), nil
}

// Upload asset
// @Summary Upload a file into the client asset library
// @Security BearerAuth
// @Schemes
// @Description Upload a file into the client asset library
// @Tags auth required
// @Accept multipart/form-data
// @Param file formData file true "Asset file"
// @Param category formData string false "Category"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.AssetView]
// @Router /assets [post]
func uploadAsset(c *gin.Context) (*model.AssetView, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		return nil, err
	}
	dir := singleton.Conf.Storage.AssetDir
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	// Stored name is opaque; the original name only lives in the row.
	dst := filepath.Join(dir, id+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return nil, err
	}

	user := currentUser(c)
	category := c.PostForm("category")
	if category == "" {
		category = "General"
	}
	asset := model.Asset{
		ClientID:    user.ClientID,
		Name:        fh.Filename,
		Category:    category,
		StorageType: "local",
		SizeBytes:   uint64(fh.Size),
		MimeType:    fh.Header.Get("Content-Type"),
		FilePath:    dst,
		UploadedBy:  user.ID,
		UpdatedBy:   user.ID,
	}
	if err := singleton.DB.Create(&asset).Error; err != nil {
		os.Remove(dst)
		return nil, newGormError("%v", err)
	}

	if link := singleton.AssetDownloadURL(asset.ID); link != "" {
		asset.DownloadLink = link
		if err := singleton.DB.Model(&asset).Update("download_link", link).Error; err != nil {
			return nil, newGormError("%v", err)
		}
	}

	return &model.AssetView{Asset: asset, Size: asset.SizeHuman()}, nil
}

// Download asset
// @Summary Download an asset file
// @Security BearerAuth
// @Schemes
// @Description Download an asset file
// @Tags auth required
// @Param id path uint true "Asset ID"
// @Produce octet-stream
// @Router /assets/{id}/download [get]
func downloadAsset(c *gin.Context) {
	serve := func() error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return err
		}

		var asset model.Asset
		err = singleton.DB.Where("id = ? AND client_id = ?", id, currentUser(c).ClientID).
			First(&asset).Error
		if err != nil {
			return errors.New("asset not found")
		}
		if asset.StorageType != "local" || asset.FilePath == "" {
			return errors.New("asset is not stored locally")
		}

		c.FileAttachment(asset.FilePath, asset.Name)
		return nil
	}
	if err := serve(); err != nil {
		c.JSON(http.StatusOK, model.CommonResponse[any]{
			Success: false,
			Error:   err.Error(),
		})
	}
}
