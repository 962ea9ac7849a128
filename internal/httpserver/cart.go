package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
	checkoutsvc "storefront/internal/service/checkout"
)

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case errors.Is(err, cartsvc.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		view, err := svc.AddItem(c.Request.Context(), sessionID(c), in)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.UpdateItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		view, err := svc.UpdateItem(c.Request.Context(), sessionID(c), c.Param("productId"), in)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.RemoveItem(c.Request.Context(), sessionID(c), c.Param("productId"))
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), sessionID(c)); err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

type checkoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

func checkoutHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		result, err := svc.Checkout(c.Request.Context(), sessionID(c), req.CustomerName, req.CustomerPhone)
		if err != nil {
			var verr *checkout.ValidationError
			var serr *checkoutsvc.SubmissionError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			case errors.Is(err, checkoutsvc.ErrCheckoutInFlight):
				c.JSON(http.StatusConflict, gin.H{"message": "Checkout already in progress"})
			case errors.As(err, &serr):
				c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to place order. Please try again."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			}
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
