package response

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/commands"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"
)

type CartResultResponse struct {
	CartID      string `json:"cart_id"`
	Email       string `json:"email"`
	EmailNumber int    `json:"email_number"`
	Success     bool   `json:"success"`
	Skipped     bool   `json:"skipped,omitempty"`
	Error       string `json:"error,omitempty"`
}

type ProcessResponse struct {
	Success   bool                  `json:"success"`
	Processed int                   `json:"processed"`
	Results   []*CartResultResponse `json:"results"`
}

func FromRunResult(r *commands.RunResult) *ProcessResponse {
	results := make([]*CartResultResponse, len(r.Results))
	for i, it := range r.Results {
		results[i] = &CartResultResponse{
			CartID:      it.CartID.String(),
			Email:       it.Email,
			EmailNumber: it.EmailNumber,
			Success:     it.Success,
			Skipped:     it.Skipped,
			Error:       it.Error,
		}
	}
	return &ProcessResponse{
		Success:   r.Success,
		Processed: r.Processed,
		Results:   results,
	}
}

type NextStepResponse struct {
	CartID          string  `json:"cart_id"`
	Status          string  `json:"status"`
	EmailsSent      int     `json:"emails_sent"`
	ExpiresAt       int64   `json:"expires_at"`
	Eligible        bool    `json:"eligible"`
	Due             bool    `json:"due"`
	NextDueAt       *int64  `json:"next_due_at,omitempty"`
	StepNumber      *int    `json:"step_number,omitempty"`
	Subject         *string `json:"subject,omitempty"`
	IncludeDiscount bool    `json:"include_discount"`
	DiscountCode    *string `json:"discount_code,omitempty"`
	DiscountPercent *int    `json:"discount_percent,omitempty"`
}

func FromNextStepView(v *queries.NextStepView) *NextStepResponse {
	res := &NextStepResponse{
		CartID:          v.CartID.String(),
		Status:          v.Status.String(),
		EmailsSent:      v.EmailsSent,
		ExpiresAt:       v.ExpiresAt.Unix(),
		Eligible:        v.Eligible,
		Due:             v.Due,
		StepNumber:      v.StepNumber,
		Subject:         v.Subject,
		IncludeDiscount: v.IncludeDiscount,
		DiscountCode:    v.DiscountCode,
		DiscountPercent: v.DiscountPercent,
	}
	if v.NextDueAt != nil {
		ts := v.NextDueAt.Unix()
		res.NextDueAt = &ts
	}
	return res
}
