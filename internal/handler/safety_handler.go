package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/hub"
	"odishaconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type ReportUserInput struct {
	ReportedUserID uint     `json:"reported_user_id" binding:"required"`
	Reason         string   `json:"reason" binding:"required,oneof=inappropriate_content harassment fake_profile safety_concern spam"`
	Description    string   `json:"description" binding:"required"`
	Evidence       []string `json:"evidence"`
}

type ReportResponse struct {
	ID             uint      `json:"id"`
	ReporterID     uint      `json:"reporter_id"`
	ReportedUserID uint      `json:"reported_user_id"`
	Reason         string    `json:"reason"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Evidence       []string  `json:"evidence"`
	CreatedAt      time.Time `json:"created_at"`
}

type SubmitVerificationInput struct {
	VerificationType string  `json:"verification_type" binding:"required,oneof=phone government_id social_media"`
	DocumentID       *string `json:"document_id"`
}

type VerificationResponse struct {
	ID               uint       `json:"id"`
	VerificationType string     `json:"verification_type"`
	Status           string     `json:"status"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type ReviewReportInput struct {
	Status string `json:"status" binding:"required,oneof=reviewed resolved"`
}

type ReviewVerificationInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

func newReportResponse(report models.Report) ReportResponse {
	return ReportResponse{
		ID:             report.ID,
		ReporterID:     report.ReporterID,
		ReportedUserID: report.ReportedUserID,
		Reason:         string(report.Reason),
		Description:    report.Description,
		Status:         string(report.Status),
		Evidence:       models.DecodeStringList(report.Evidence),
		CreatedAt:      report.CreatedAt,
	}
}

func newVerificationResponse(verification models.Verification) VerificationResponse {
	return VerificationResponse{
		ID:               verification.ID,
		VerificationType: string(verification.VerificationType),
		Status:           string(verification.Status),
		VerifiedAt:       verification.VerifiedAt,
		CreatedAt:        verification.CreatedAt,
	}
}

// endregion

// ReportUser godoc
// @Summary      Report a user
// @Description  Files a report against another user. Reaching the report threshold blocks the reported account.
// @Tags         safety
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReportUserInput true "Report"
// @Success      201  {object}  ReportResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /safety/report [post]
func ReportUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input ReportUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if viewerID.(uint) == input.ReportedUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot report yourself"})
		return
	}

	var report models.Report
	var blocked bool
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var reported models.User
		if err := tx.First(&reported, input.ReportedUserID).Error; err != nil {
			return err
		}

		report = models.Report{
			ReporterID:     viewerID.(uint),
			ReportedUserID: input.ReportedUserID,
			Reason:         models.ReportReason(input.Reason),
			Description:    input.Description,
			Status:         models.ReportPending,
			Evidence:       models.StringList(input.Evidence),
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", input.ReportedUserID).
			Update("report_count", gorm.Expr("report_count + 1")).Error; err != nil {
			return err
		}

		if err := tx.First(&reported, input.ReportedUserID).Error; err != nil {
			return err
		}
		if reported.ReportCount >= models.AutoBlockThreshold && !reported.IsBlocked {
			if err := tx.Model(&reported).Update("is_blocked", true).Error; err != nil {
				return err
			}
			blocked = true
		}
		return nil
	})

	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if txErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file report"})
		return
	}

	if blocked {
		hub.GlobalHub.Publish(hub.Event{Type: hub.EventUserBlocked, Payload: gin.H{
			"user_id": input.ReportedUserID,
		}})
	}

	c.JSON(http.StatusCreated, newReportResponse(report))
}

// SubmitVerification godoc
// @Summary      Submit a verification request
// @Tags         safety
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SubmitVerificationInput true "Verification"
// @Success      201  {object}  VerificationResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /safety/verification [post]
func SubmitVerification(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input SubmitVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verification := models.Verification{
		UserID:           viewerID.(uint),
		VerificationType: models.VerificationType(input.VerificationType),
		DocumentID:       input.DocumentID,
		Status:           models.VerificationPending,
	}
	if err := database.DB.Create(&verification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit verification"})
		return
	}

	c.JSON(http.StatusCreated, newVerificationResponse(verification))
}

// GetVerificationStatus godoc
// @Summary      Get my verification requests
// @Tags         safety
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} VerificationResponse
// @Router       /safety/verification [get]
func GetVerificationStatus(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var verifications []models.Verification
	err := database.DB.
		Where("user_id = ?", viewerID).
		Order("created_at DESC").
		Find(&verifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch verifications"})
		return
	}

	responses := make([]VerificationResponse, 0, len(verifications))
	for _, verification := range verifications {
		responses = append(responses, newVerificationResponse(verification))
	}
	c.JSON(http.StatusOK, responses)
}

// ListReports godoc
// @Summary      List reports
// @Description  Admin moderation queue, newest first.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status   query string false "Filter by status" Enums(pending, reviewed, resolved)
// @Param        page     query int    false "Page" default(1)
// @Param        per_page query int    false "Page size" default(20)
// @Success      200 {object} PaginatedResponse[ReportResponse]
// @Router       /admin/reports [get]
func ListReports(c *gin.Context) {
	query := database.DB.Model(&models.Report{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	reports, page, perPage, total, err := Paginate[models.Report](c, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, newReportResponse(report))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, page, perPage, total))
}

// ReviewReport godoc
// @Summary      Review a report
// @Description  Moves a report to reviewed or resolved.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int               true "Report ID"
// @Param        input body ReviewReportInput true "Review"
// @Success      200 {object} ReportResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admin/reports/{id} [put]
func ReviewReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input ReviewReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report models.Report
	if err := database.DB.First(&report, reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	report.Status = models.ReportStatus(input.Status)
	if err := database.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, newReportResponse(report))
}

// ReviewVerification godoc
// @Summary      Review a verification request
// @Description  Approves or rejects a verification. Approval also marks the user as verified.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int                     true "Verification ID"
// @Param        input body ReviewVerificationInput true "Review"
// @Success      200 {object} VerificationResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admin/verifications/{id} [put]
func ReviewVerification(c *gin.Context) {
	verificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification ID"})
		return
	}

	var input ReviewVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var verification models.Verification
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&verification, verificationID).Error; err != nil {
			return err
		}

		verification.Status = models.VerificationStatus(input.Status)
		if input.Status == string(models.VerificationApproved) {
			now := time.Now()
			verification.VerifiedAt = &now
			if err := tx.Model(&models.User{}).
				Where("id = ?", verification.UserID).
				Update("is_verified", true).Error; err != nil {
				return err
			}
		}
		return tx.Save(&verification).Error
	})

	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Verification not found"})
		return
	} else if txErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update verification"})
		return
	}

	c.JSON(http.StatusOK, newVerificationResponse(verification))
}
