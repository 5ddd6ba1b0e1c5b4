package httpt

import "github.com/SouthBennett/pizza/internal/entity"

type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// orderView wraps an order with the timestamp pre-formatted for the
// admin and confirmation templates.
type orderView struct {
	*entity.Order
	FormattedTimestamp string
}
