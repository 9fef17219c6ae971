package handler

import (
	"net/http"

	"odishaconnect/backend/internal/odisha"

	"github.com/gin-gonic/gin"
)

// GetDistricts godoc
// @Summary      List districts
// @Description  Returns the 30 districts of Odisha with English and Odia names.
// @Tags         reference
// @Produce      json
// @Success      200 {array} odisha.BilingualLabel
// @Router       /reference/districts [get]
func GetDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, odisha.Districts)
}

// GetInterests godoc
// @Summary      List interest options
// @Description  Returns cultural and common interest choices for profile building.
// @Tags         reference
// @Produce      json
// @Success      200 {object} map[string][]odisha.BilingualLabel
// @Router       /reference/interests [get]
func GetInterests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cultural": odisha.CulturalInterests,
		"common":   odisha.CommonInterests,
	})
}

// GetSafetyTips godoc
// @Summary      List safety tips
// @Tags         reference
// @Produce      json
// @Success      200 {array} odisha.SafetyTip
// @Router       /reference/safety-tips [get]
func GetSafetyTips(c *gin.Context) {
	c.JSON(http.StatusOK, odisha.SafetyTips)
}

// GetEmergencyContacts godoc
// @Summary      List emergency contacts
// @Tags         reference
// @Produce      json
// @Success      200 {array} odisha.EmergencyContact
// @Router       /reference/emergency-contacts [get]
func GetEmergencyContacts(c *gin.Context) {
	c.JSON(http.StatusOK, odisha.EmergencyContacts)
}
