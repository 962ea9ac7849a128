package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingssvc "storefront/internal/service/settings"
)

func publicSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		public, err := svc.Public(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, public)
	}
}

func getSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svc.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func updateSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in settingssvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		settings, err := svc.Update(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
