package carwash_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/services"
	"gorm.io/gorm"
)

func validImageType(t string) bool {
	for _, allowed := range models.ImageTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// UploadCarWashImages godoc
// @Summary Upload car wash images
// @Description Upload one or more photos for a car wash. Images are stored on Cloudinary and recorded with their type.
// @Tags Car Washes
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Car wash ID"
// @Param image_type formData string true "Image type (Menu | Station | Exterior | Interior)"
// @Param images formData file true "Image files"
// @Success 201 {object} models.ApiResponse "Images uploaded successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Car wash not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/{id}/images [post]
func UploadCarWashImages(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car wash ID"))
		return
	}

	imageType := c.PostForm("image_type")
	if !validImageType(imageType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image_type must be one of Menu, Station, Exterior, Interior"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image files provided"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	var carWash models.CarWash
	if err := config.DB.WithContext(ctx).First(&carWash, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car wash not found"))
			return
		}
		log.Printf("[carwash.images] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch car wash"))
		return
	}

	urls, err := services.GetUploadService().UploadMultipleImages(ctx, files, "washbuddy/carwashes")
	if err != nil {
		log.Printf("[carwash.images] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	var createdBy *uuid.UUID
	if idStr, ok := middleware.GetUserIDFromContext(c); ok {
		if uid, err := uuid.Parse(idStr); err == nil {
			createdBy = &uid
		}
	}

	images := make([]models.CarWashImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.CarWashImage{
			CarWashID: carWash.ID,
			ImageType: imageType,
			ImageURL:  url,
			CreatedBy: createdBy,
		})
	}
	if err := config.DB.WithContext(ctx).Create(&images).Error; err != nil {
		log.Printf("[carwash.images] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save images"))
		return
	}

	log.Printf("[carwash.images] uploaded %d images for car wash %d", len(images), carWash.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Images uploaded successfully", images))
}
