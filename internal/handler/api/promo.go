package api

import (
	"errors"
	"net/http"

	"bookit/internal/domain/promo"
	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct{}

func NewPromoHandler() *PromoHandler {
	return &PromoHandler{}
}

// @Summary Validate promo code
// @Description Evaluate a promo code against a checkout subtotal
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo validation request"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Router /promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	code, err := promo.Lookup(req.Code)
	if err != nil {
		if errors.Is(err, promo.ErrCodeNotFound) {
			// An unknown code is a normal outcome: the checkout keeps the
			// previously applied discount at zero.
			c.JSON(http.StatusOK, &resdto.PromoValidationResponse{Valid: false})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, &resdto.PromoValidationResponse{
		Valid:    true,
		Discount: code.DiscountFor(*req.Subtotal),
		Type:     string(code.Type()),
	})
}
