//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/api"
	resdto "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/dto/response"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/middleware"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/commands"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/httptest"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/testutil"
	commandsmock "github.com/mgthompo1/pulse-ticket-launch-sub008/tests/mock/commands"
	queriesmock "github.com/mgthompo1/pulse-ticket-launch-sub008/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecoveryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRecoveryCommands
	mockQueries  *queriesmock.MockRecoveryQueries
	handler      *api.RecoveryHandler
}

func (s *RecoveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRecoveryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRecoveryQueries(s.mockCtrl)
	s.handler = api.NewRecoveryHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/abandoned-carts/process", s.handler.Process)
	s.router.GET("/api/abandoned-carts/:id/next-step", s.handler.NextStep)
}

func (s *RecoveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecoveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecoveryHandlerTestSuite))
}

type testCaseProcess struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestProcess
// ================================================================================

func (s *RecoveryHandlerTestSuite) TestProcess() {
	url := "/api/abandoned-carts/process"
	cartID := uuid.New()
	runResult := &commands.RunResult{
		Success:   true,
		Processed: 2,
		Results: []commands.CartResult{
			{CartID: cartID, Email: "buyer@example.com", EmailNumber: 1, Success: true},
			{CartID: uuid.New(), Email: "other@example.com", EmailNumber: 2, Skipped: true, Error: "already advanced by another run"},
		},
	}

	s.Run("success: empty body runs a regular batch", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), commands.RunParams{}).Return(runResult, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": httptest.JSONContentType})
		var res resdto.ProcessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Equal(2, res.Processed)
		s.Require().Len(res.Results, 2)
		s.Equal(cartID.String(), res.Results[0].CartID)
		s.Equal(1, res.Results[0].EmailNumber)
		s.True(res.Results[0].Success)
		s.True(res.Results[1].Skipped)
		s.Equal("already advanced by another run", res.Results[1].Error)
	})

	s.Run("success: body fields reach the run params", func() {
		expected := commands.RunParams{CartID: &cartID, TestMode: true, Limit: 10}
		s.mockCommands.EXPECT().Run(gomock.Any(), expected).Return(&commands.RunResult{Success: true}, nil)

		body := map[string]any{"cart_id": cartID.String(), "test_mode": true, "limit": 10}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.ProcessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.NotNil(res.Results)
	})

	base := map[string]any{"test_mode": false, "limit": 5}
	validation := []testCaseProcess{
		{name: "limit boundary OK (1)", mutate: testutil.Field("limit", 1), expectCode: http.StatusOK},
		{name: "limit boundary OK (1000)", mutate: testutil.Field("limit", 1000), expectCode: http.StatusOK},
		{name: "limit boundary invalid (-1)", mutate: testutil.Field("limit", -1), expectCode: http.StatusBadRequest},
		{name: "limit boundary invalid (1001)", mutate: testutil.Field("limit", 1001), expectCode: http.StatusBadRequest},
		{name: "invalid cart_id", mutate: testutil.Field("cart_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "wrong type: test_mode", mutate: testutil.Field("test_mode", "yes"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusOK {
				s.mockCommands.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&commands.RunResult{Success: true}, nil)
			}
			body := testutil.DtoMap(s.T(), base, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"limit":`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown cart returns 404", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), commands.ErrCartNotFound))

		body := map[string]any{"cart_id": uuid.New().String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})

	s.Run("error: candidate query failure returns 500", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), commands.ErrCandidateQueryFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load recovery candidates")
	})
}

// ================================================================================
// TestNextStep
// ================================================================================

func (s *RecoveryHandlerTestSuite) TestNextStep() {
	cartID := uuid.New()
	url := "/api/abandoned-carts/" + cartID.String() + "/next-step"

	s.Run("success: returns preview", func() {
		step := 2
		subject := "10% off"
		code := "COMEBACK10"
		percent := 10
		view := &queries.NextStepView{
			CartID:          cartID,
			Status:          cart.StatusEmailSent,
			EmailsSent:      1,
			Eligible:        true,
			Due:             true,
			StepNumber:      &step,
			Subject:         &subject,
			IncludeDiscount: true,
			DiscountCode:    &code,
			DiscountPercent: &percent,
		}
		s.mockQueries.EXPECT().NextStep(gomock.Any(), cartID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": httptest.JSONContentType})
		var res resdto.NextStepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(cartID.String(), res.CartID)
		s.Equal("email_sent", res.Status)
		s.True(res.Due)
		s.Require().NotNil(res.StepNumber)
		s.Equal(2, *res.StepNumber)
		s.Equal("COMEBACK10", *res.DiscountCode)
		s.Nil(res.NextDueAt)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/abandoned-carts/abc/next-step", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown cart", func() {
		s.mockQueries.EXPECT().NextStep(gomock.Any(), cartID).Return(nil, queries.ErrCartNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})

	s.Run("error: unexpected failure", func() {
		s.mockQueries.EXPECT().NextStep(gomock.Any(), cartID).Return(nil, errs.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load next step")
	})
}
