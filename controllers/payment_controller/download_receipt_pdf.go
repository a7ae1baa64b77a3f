package payment_controller

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

// DownloadReceiptPDF godoc
// @Summary Download a purchase receipt PDF
// @Description Generate a PDF receipt for one of the signed-in user's completed payments.
// @Tags Payments
// @Produce application/pdf
// @Param id path string true "Payment ID"
// @Success 200 {file} binary "Receipt PDF"
// @Failure 400 {object} models.ApiResponse "Invalid payment ID"
// @Failure 404 {object} models.ApiResponse "Payment not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/payments/{id}/receipt [get]
func DownloadReceiptPDF(c *gin.Context) {
	paymentID := c.Param("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payment ID"))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payment models.Payment
	if err := config.DB.
		WithContext(ctx).
		Where("id = ? AND user_id = ?", paymentID, userID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Payment not found"))
			return
		}
		log.Printf("[payment.receipt] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payment"))
		return
	}

	if payment.Status != models.PaymentCompleted {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Receipts are only available for completed payments"))
		return
	}

	var offer models.Offer
	_ = config.DB.WithContext(ctx).First(&offer, "id = ?", payment.OfferID).Error

	var carWash models.CarWash
	_ = config.DB.WithContext(ctx).First(&carWash, offer.CarWashID).Error

	washCode := ""
	if payment.CarWashCodeID != nil {
		var code models.CarWashCode
		if err := config.DB.WithContext(ctx).First(&code, "id = ?", *payment.CarWashCodeID).Error; err == nil {
			washCode = code.Code
		}
	}

	buf := generateReceiptPDF(&payment, &offer, &carWash, washCode)
	if buf.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="washbuddy-receipt-%s.pdf"`, payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func generateReceiptPDF(payment *models.Payment, offer *models.Offer, carWash *models.CarWash, washCode string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("RECEIPT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("WASHBUDDY", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@washbuddy.app", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("CAR WASH", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("RECEIPT DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(carWash.CarWashName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Receipt #%s", payment.ID), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(carWash.FormattedAddress, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", payment.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Amount", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {
		m.Col(8, func() {
			m.Text(offer.Name, props.Text{
				Size:  9,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("$%s", payment.Amount), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%s", payment.Amount), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	if washCode != "" {
		m.Row(10, func() {})
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("YOUR WASH CODE", props.Text{
					Size:  8,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(washCode, props.Text{
					Size:  18,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thanks for washing with us!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[payment.receipt] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
