//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookit/internal/handler/api"
	resdto "bookit/internal/handler/dto/response"
	"bookit/tests/common/httptest"
	"bookit/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type PromoHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.PromoHandler
}

func (s *PromoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.handler = api.NewPromoHandler()
	s.router.POST("/promo/validate", s.handler.Validate)
}

func TestPromoHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoHandlerTestSuite))
}

func (s *PromoHandlerTestSuite) TestValidate() {
	url := "/promo/validate"

	s.Run("success: evaluates known codes against the subtotal", func() {
		testCases := []struct {
			name             string
			code             string
			subtotal         int64
			expectedDiscount int64
			expectedType     string
		}{
			{name: "percentage code", code: "SAVE10", subtotal: 1000, expectedDiscount: 100, expectedType: "percentage"},
			{name: "zero subtotal yields zero discount", code: "SAVE10", subtotal: 0, expectedDiscount: 0, expectedType: "percentage"},
			{name: "percentage rounds half up", code: "SAVE10", subtotal: 1005, expectedDiscount: 101, expectedType: "percentage"},
			{name: "flat code", code: "FLAT100", subtotal: 1000, expectedDiscount: 100, expectedType: "flat"},
			{name: "flat code capped at subtotal", code: "FLAT100", subtotal: 60, expectedDiscount: 60, expectedType: "flat"},
			{name: "lowercase input is normalized", code: "save10", subtotal: 1000, expectedDiscount: 100, expectedType: "percentage"},
			{name: "surrounding whitespace is trimmed", code: "  SAVE10  ", subtotal: 1000, expectedDiscount: 100, expectedType: "percentage"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := map[string]any{"code": tc.code, "subtotal": tc.subtotal}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

				var response resdto.PromoValidationResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.True(response.Valid)
				s.Equal(tc.expectedDiscount, response.Discount)
				s.Equal(tc.expectedType, response.Type)
			})
		}
	})

	s.Run("success: unknown code returns valid=false with 200", func() {
		body := map[string]any{"code": "NOSUCHCODE", "subtotal": int64(1000)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.PromoValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Zero(response.Discount)
	})

	s.Run("error: 400 Bad Request on malformed bodies", func() {
		base := map[string]any{"code": "SAVE10", "subtotal": int64(1000)}

		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "missing subtotal", mutate: testutil.Field("subtotal", nil)},
			{name: "non-numeric subtotal", mutate: testutil.Field("subtotal", "lots")},
			{name: "negative subtotal", mutate: testutil.Field("subtotal", int64(-1))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}
