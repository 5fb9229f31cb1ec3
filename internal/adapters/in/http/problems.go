package http

import (
	"errors"
	"fmt"
	"net/http"

	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ProblemContentType is the media type of problem bodies.
const ProblemContentType = "application/problem+json"

// Problem is the structured error body for 404 and 405 responses.
type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// writeProblem relies on echo keeping a Content-Type that was set before
// the body is rendered, so the problem media type survives c.JSON.
func writeProblem(c echo.Context, status int, title, detail string) error {
	c.Response().Header().Set(echo.HeaderContentType, ProblemContentType)
	return c.JSON(status, Problem{Title: title, Detail: detail})
}

func notFoundProblem(c echo.Context, id any) error {
	return writeProblem(c, http.StatusNotFound, "Not Found", fmt.Sprintf("Order %v not found", id))
}

// writeDomainError maps use case failures to their HTTP representation:
// missing orders become 404 problems, illegal status transitions become
// 405 problems, anything else a generic 500.
func writeDomainError(c echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return notFoundProblem(c, notFound.ID)
	}

	var transition *errs.StatusTransitionError
	if errors.As(err, &transition) {
		detail := fmt.Sprintf("Not allowed to %s an order with status %s", transition.Action, transition.Status)
		return writeProblem(c, http.StatusMethodNotAllowed, "Method not allowed", detail)
	}

	return writeProblem(c, http.StatusInternalServerError, "Internal Server Error", "The request could not be processed")
}
