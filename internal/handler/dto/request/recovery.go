package request

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/commands"

	"github.com/google/uuid"
)

// ProcessRequest is optional as a whole; an empty body runs a regular batch.
type ProcessRequest struct {
	CartID   *uuid.UUID `json:"cart_id"`
	TestMode bool       `json:"test_mode"`
	Limit    int        `json:"limit" binding:"omitempty,min=1,max=1000"`
}

func (r *ProcessRequest) ToRunParams() commands.RunParams {
	return commands.RunParams{
		CartID:   r.CartID,
		TestMode: r.TestMode,
		Limit:    r.Limit,
	}
}
