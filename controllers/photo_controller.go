package controllers

import (
	"context"
	"mime/multipart"
	"net/http"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/errors"
	"hotelinfo/models"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"
	"hotelinfo/services/logger"

	"github.com/gin-gonic/gin"
)

const uploadField = "files"

type PhotoController struct {
	repo  repository.HotelInfoRepository
	blobs services.BlobStore
	cache services.Cache
	log   logger.Logger
}

func NewPhotoController(repo repository.HotelInfoRepository, blobs services.BlobStore, cache services.Cache, log logger.Logger) *PhotoController {
	return &PhotoController{repo: repo, blobs: blobs, cache: cache, log: log}
}

// GetPhoto godoc
// @Summary Get a photo
// @Tags photos
// @Param photoId path int true "photo id"
// @Success 200 {object} dto.PhotoDto
// @Failure 404 {object} response.Response
// @Router /photos/{photoId} [get]
func (pc *PhotoController) GetPhoto(c *gin.Context) {
	id, ok := parseID(c, "photoId")
	if !ok {
		return
	}
	photo, err := pc.repo.GetPhoto(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToPhotoDto(*photo))
}

// UploadPhotos godoc
// @Summary Upload photos to blob storage
// @Description Each file in the multipart field "files" is stored in a folder named after the uploader.
// @Tags photos
// @Security Bearer
// @Accept multipart/form-data
// @Param files formData file true "images"
// @Success 201 {array} dto.PhotoDto
// @Failure 400 {object} response.Response
// @Router /photos [post]
func (pc *PhotoController) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File[uploadField]) == 0 {
		emptyUpload(c)
		return
	}
	files := form.File[uploadField]
	for _, file := range files {
		if file.Size == 0 {
			emptyUpload(c)
			return
		}
	}

	ctx := c.Request.Context()
	folder := c.GetString(constants.ContextUsername)
	names := make([]string, 0, len(files))
	photos := make([]*models.Photo, 0, len(files))
	for _, file := range files {
		name := services.NewBlobName()
		url, err := pc.store(ctx, folder, name, file)
		if err != nil {
			pc.log.Error("upload %s for %s: %v", file.Filename, folder, err)
			pc.discard(ctx, folder, names)
			response.Error(c, http.StatusBadRequest, errors.ErrCodeUploadFailed, "Upload failed")
			return
		}
		names = append(names, name)
		photos = append(photos, &models.Photo{URL: url})
	}

	if err := pc.repo.CreatePhotos(ctx, photos); err != nil {
		pc.discard(ctx, folder, names)
		c.Error(err)
		return
	}

	created := make([]dto.PhotoDto, 0, len(photos))
	for _, photo := range photos {
		created = append(created, dto.ToPhotoDto(*photo))
	}
	response.Created(c, location("/photos/%d", created[0].ID), created)
}

func (pc *PhotoController) store(ctx context.Context, folder, name string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return pc.blobs.Upload(ctx, folder, name, src)
}

// discard removes blobs stored by an upload that did not complete.
func (pc *PhotoController) discard(ctx context.Context, folder string, names []string) {
	for _, name := range names {
		if err := pc.blobs.Delete(ctx, folder, name); err != nil {
			pc.log.Error("discard blob %s/%s: %v", folder, name, err)
		}
	}
}

func emptyUpload(c *gin.Context) {
	response.AppError(c, errors.NewAppError(errors.ErrCodeEmptyUpload, "No files were uploaded", errors.ErrEmptyUpload))
}

// UpdatePhoto godoc
// @Summary Replace a photo's URL
// @Tags photos
// @Security Bearer
// @Param photoId path int true "photo id"
// @Param photo body dto.PhotoForUpdate true "photo"
// @Success 204
// @Router /photos/{photoId} [put]
func (pc *PhotoController) UpdatePhoto(c *gin.Context) {
	id, ok := parseID(c, "photoId")
	if !ok {
		return
	}
	var input dto.PhotoForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	photo, err := pc.repo.GetPhoto(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	photo.URL = input.URL
	if err := pc.repo.UpdatePhoto(ctx, photo); err != nil {
		c.Error(err)
		return
	}
	pc.invalidate(c)
	response.NoContent(c)
}

// PartiallyUpdatePhoto godoc
// @Summary Patch a photo
// @Tags photos
// @Security Bearer
// @Param photoId path int true "photo id"
// @Success 204
// @Router /photos/{photoId} [patch]
func (pc *PhotoController) PartiallyUpdatePhoto(c *gin.Context) {
	id, ok := parseID(c, "photoId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	photo, err := pc.repo.GetPhoto(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.PhotoForUpdate
	if !bindPatch(c, dto.ToPhotoForUpdate(*photo), &patched) {
		return
	}
	photo.URL = patched.URL
	if err := pc.repo.UpdatePhoto(ctx, photo); err != nil {
		c.Error(err)
		return
	}
	pc.invalidate(c)
	response.NoContent(c)
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Security Bearer
// @Param photoId path int true "photo id"
// @Success 204
// @Router /photos/{photoId} [delete]
func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c, "photoId")
	if !ok {
		return
	}
	if err := pc.repo.DeletePhoto(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	pc.invalidate(c)
	response.NoContent(c)
}

// ListFor serves GET /<owner>/:param/photos.
func (pc *PhotoController) ListFor(kind repository.OwnerKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := photoOwner(c, kind, param)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if !requireExists(c, pc.ownerExists(owner.Kind), owner.ID) {
			return
		}
		photos, err := pc.repo.ListPhotos(ctx, owner)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, dto.ToPhotoDtoList(photos))
	}
}

// AddFor serves POST /<owner>/:param/photos with a PhotoForCreation body.
func (pc *PhotoController) AddFor(kind repository.OwnerKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := photoOwner(c, kind, param)
		if !ok {
			return
		}
		if !requireExists(c, pc.ownerExists(owner.Kind), owner.ID) {
			return
		}

		var input dto.PhotoForCreation
		if !bindJSON(c, &input) {
			return
		}

		photo := models.Photo{URL: input.URL}
		if err := pc.repo.AddPhoto(c.Request.Context(), owner, &photo); err != nil {
			c.Error(err)
			return
		}
		pc.invalidate(c)
		response.Created(c, location("/photos/%d", photo.ID), dto.ToPhotoDto(photo))
	}
}

// RemoveFor serves DELETE /<owner>/:param/photos/:photoId.
func (pc *PhotoController) RemoveFor(kind repository.OwnerKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := photoOwner(c, kind, param)
		if !ok {
			return
		}
		photoID, ok := parseID(c, "photoId")
		if !ok {
			return
		}
		if !requireExists(c, pc.ownerExists(owner.Kind), owner.ID) {
			return
		}
		if err := pc.repo.RemovePhoto(c.Request.Context(), owner, photoID); err != nil {
			c.Error(err)
			return
		}
		pc.invalidate(c)
		response.NoContent(c)
	}
}

func photoOwner(c *gin.Context, kind repository.OwnerKind, param string) (repository.PhotoOwner, bool) {
	id, ok := parseID(c, param)
	if !ok {
		return repository.PhotoOwner{}, false
	}
	return repository.PhotoOwner{Kind: kind, ID: id}, true
}

func (pc *PhotoController) ownerExists(kind repository.OwnerKind) existsFunc {
	switch kind {
	case repository.OwnerCity:
		return pc.repo.CityExists
	case repository.OwnerHotel:
		return pc.repo.HotelExists
	case repository.OwnerRoom:
		return pc.repo.RoomExists
	case repository.OwnerRoomClass:
		return pc.repo.RoomClassExists
	}
	return func(context.Context, uint) (bool, error) { return false, nil }
}

// search results carry thumbnails, so photo changes drop cached hotel pages too
func (pc *PhotoController) invalidate(c *gin.Context) {
	invalidate(c.Request.Context(), pc.cache, pc.log, constants.CacheKeyHotels)
}
