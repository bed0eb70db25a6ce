package report

import (
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
)

// EmployeeReport is the aggregate view of one account fed to the
// recommendation rule engine. Every field may be absent; absence is a
// meaningful state, not an error.
type EmployeeReport struct {
	Subscription    *subscription.Subscription `json:"subscription,omitempty"`
	IsActive        *bool                      `json:"is_active,omitempty"`
	Activity        *employee.ActivityMetrics  `json:"activity,omitempty"`
	PaymentHistory  []*payment.Record          `json:"payment_history,omitempty"`
	TotalAmountPaid float64                    `json:"total_amount_paid"`
}
